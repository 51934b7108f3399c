package like

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/query"
)

// routeTargets maps the one-letter path segment to a like target.
var routeTargets = map[string]Target{
	"v": TargetVideo,
	"c": TargetComment,
	"t": TargetTweet,
}

type Handler struct {
	likeService LikeService
}

func NewHandler(likeService LikeService) *Handler {
	return &Handler{likeService: likeService}
}

func (h *Handler) RegisterRoutes(r *mux.Router, protect func(http.HandlerFunc) http.Handler) {
	likes := r.PathPrefix("/likes").Subrouter()

	likes.Handle("/videos", protect(h.LikedVideos)).Methods(http.MethodGet)
	likes.Handle("/toggle/{kind:[vct]}/{targetId}", protect(h.Toggle)).Methods(http.MethodPost)
	likes.Handle("/{kind:[vct]}/{targetId}", protect(h.ListForTarget)).Methods(http.MethodGet)
}

func targetFromRequest(r *http.Request) (Target, primitive.ObjectID, error) {
	vars := mux.Vars(r)
	target, ok := routeTargets[vars["kind"]]
	if !ok {
		return "", primitive.NilObjectID, common.ErrValidation("Invalid like target")
	}
	id, err := query.ParseObjectID(vars["targetId"], string(target)+"Id")
	if err != nil {
		return "", primitive.NilObjectID, err
	}
	return target, id, nil
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	target, targetID, err := targetFromRequest(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	result, err := h.likeService.Toggle(r.Context(), target, targetID, userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	message := "Like removed successfully"
	if result.Liked {
		message = "Like added successfully"
	}
	common.WriteJSON(w, http.StatusOK, result, message)
}

func (h *Handler) ListForTarget(w http.ResponseWriter, r *http.Request) {
	target, targetID, err := targetFromRequest(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	params, err := query.ParsePage(r.URL.Query(), query.DefaultLikeLimit)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	page, err := h.likeService.ListForTarget(r.Context(), target, targetID, params)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Likes fetched successfully")
}

func (h *Handler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	params, err := query.ParsePage(r.URL.Query(), query.DefaultLimit)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	page, err := h.likeService.LikedVideos(r.Context(), userID, params)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Liked videos fetched successfully")
}
