package comment

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/query"
)

type Handler struct {
	commentService CommentService
}

func NewHandler(commentService CommentService) *Handler {
	return &Handler{commentService: commentService}
}

func (h *Handler) RegisterRoutes(r *mux.Router, protect func(http.HandlerFunc) http.Handler) {
	comments := r.PathPrefix("/comments").Subrouter()

	comments.Handle("", protect(h.Add)).Methods(http.MethodPost)
	comments.Handle("/{videoId}", protect(h.List)).Methods(http.MethodGet)
	comments.Handle("/{commentId}", protect(h.Update)).Methods(http.MethodPatch)
	comments.Handle("/{commentId}", protect(h.Delete)).Methods(http.MethodDelete)
}

type addRequest struct {
	VideoID string `json:"videoId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type updateRequest struct {
	Content string `json:"content"`
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}

	var req addRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	videoID, err := query.ParseObjectID(req.VideoID, "videoId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	comment, err := h.commentService.Add(r.Context(), videoID, owner, req.Content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, comment, "Comment added successfully")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	videoID, err := query.ParseObjectID(mux.Vars(r)["videoId"], "videoId")
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

	page, err := h.commentService.List(r.Context(), videoID, viewer, params)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Comments fetched successfully")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	id, err := query.ParseObjectID(mux.Vars(r)["commentId"], "commentId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.commentService.CheckOwner(r.Context(), id, owner); err != nil {
		common.WriteError(w, r, err)
		return
	}

	var req updateRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	comment, err := h.commentService.Update(r.Context(), id, owner, req.Content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, comment, "Comment updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	id, err := query.ParseObjectID(mux.Vars(r)["commentId"], "commentId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.commentService.Delete(r.Context(), id, owner); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Comment deleted successfully")
}
