package tweet

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/query"
)

type Handler struct {
	tweetService TweetService
}

func NewHandler(tweetService TweetService) *Handler {
	return &Handler{tweetService: tweetService}
}

func (h *Handler) RegisterRoutes(r *mux.Router, protect func(http.HandlerFunc) http.Handler) {
	tweets := r.PathPrefix("/tweets").Subrouter()

	tweets.Handle("", protect(h.Create)).Methods(http.MethodPost)
	tweets.Handle("/user/{userId}", protect(h.ListForUser)).Methods(http.MethodGet)
	tweets.Handle("/{tweetId}", protect(h.Update)).Methods(http.MethodPatch)
	tweets.Handle("/{tweetId}", protect(h.Delete)).Methods(http.MethodDelete)
}

// contentRequest is checked by the service, after ownership.
type contentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}

	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	tweet, err := h.tweetService.Create(r.Context(), owner, req.Content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, tweet, "Tweet created successfully")
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
	viewer, _ := common.UserIDFromContext(r.Context())

	page, err := h.tweetService.ListForUser(r.Context(), userID, viewer, params)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Tweets fetched successfully")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	id, err := query.ParseObjectID(mux.Vars(r)["tweetId"], "tweetId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.tweetService.CheckOwner(r.Context(), id, owner); err != nil {
		common.WriteError(w, r, err)
		return
	}

	var req contentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	tweet, err := h.tweetService.Update(r.Context(), id, owner, req.Content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	id, err := query.ParseObjectID(mux.Vars(r)["tweetId"], "tweetId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.tweetService.Delete(r.Context(), id, owner); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Tweet deleted successfully")
}
