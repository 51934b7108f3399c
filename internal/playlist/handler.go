package playlist

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/query"
)

type Handler struct {
	playlistService PlaylistService
}

func NewHandler(playlistService PlaylistService) *Handler {
	return &Handler{playlistService: playlistService}
}

func (h *Handler) RegisterRoutes(r *mux.Router, protect func(http.HandlerFunc) http.Handler) {
	playlists := r.PathPrefix("/playlists").Subrouter()

	playlists.Handle("", protect(h.Create)).Methods(http.MethodPost)
	playlists.Handle("/user/{userId}", protect(h.ListForUser)).Methods(http.MethodGet)
	playlists.Handle("/add/{videoId}/{playlistId}", protect(h.AddVideo)).Methods(http.MethodPatch)
	playlists.Handle("/remove/{videoId}/{playlistId}", protect(h.RemoveVideo)).Methods(http.MethodPatch)
	playlists.Handle("/{playlistId}", protect(h.Get)).Methods(http.MethodGet)
	playlists.Handle("/{playlistId}", protect(h.Update)).Methods(http.MethodPatch)
	playlists.Handle("/{playlistId}", protect(h.Delete)).Methods(http.MethodDelete)
}

type createRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Videos      []string `json:"videos"`
}

type updateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}

	var req createRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	playlist, err := h.playlistService.Create(r.Context(), owner, CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Videos:      req.Videos,
	})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, playlist, "Playlist created successfully")
}

func (h *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := query.ParseObjectID(mux.Vars(r)["userId"], "userId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	params, err := query.ParsePage(r.URL.Query(), query.DefaultLimit)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	page, err := h.playlistService.ListForUser(r.Context(), userID, params)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Playlists fetched successfully")
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := query.ParseObjectID(mux.Vars(r)["playlistId"], "playlistId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	playlist, err := h.playlistService.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	id, err := query.ParseObjectID(mux.Vars(r)["playlistId"], "playlistId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.playlistService.CheckOwner(r.Context(), id, owner); err != nil {
		common.WriteError(w, r, err)
		return
	}

	var req updateRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	playlist, err := h.playlistService.Update(r.Context(), id, owner, req.Name, req.Description)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	id, err := query.ParseObjectID(mux.Vars(r)["playlistId"], "playlistId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.playlistService.Delete(r.Context(), id, owner); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Playlist deleted successfully")
}

func (h *Handler) AddVideo(w http.ResponseWriter, r *http.Request) {
	owner, id, videoID, ok := h.membershipParams(w, r)
	if !ok {
		return
	}

	playlist, err := h.playlistService.AddVideo(r.Context(), id, videoID, owner)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Video added to the playlist successfully")
}

func (h *Handler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	owner, id, videoID, ok := h.membershipParams(w, r)
	if !ok {
		return
	}

	playlist, err := h.playlistService.RemoveVideo(r.Context(), id, videoID, owner)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, playlist, "Video removed from the playlist successfully")
}

func (h *Handler) membershipParams(w http.ResponseWriter, r *http.Request) (owner, id, videoID primitive.ObjectID, ok bool) {
	owner, ok = common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return owner, id, videoID, false
	}

	vars := mux.Vars(r)
	var err error
	if videoID, err = query.ParseObjectID(vars["videoId"], "videoId"); err != nil {
		common.WriteError(w, r, err)
		return owner, id, videoID, false
	}
	if id, err = query.ParseObjectID(vars["playlistId"], "playlistId"); err != nil {
		common.WriteError(w, r, err)
		return owner, id, videoID, false
	}
	return owner, id, videoID, true
}
