package video

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/media"
	"vidtube/internal/query"
)

type Handler struct {
	videoService VideoService
	spooler      *media.Spooler
	maxUpload    int64
}

func NewHandler(videoService VideoService, spooler *media.Spooler, maxUpload int64) *Handler {
	return &Handler{videoService: videoService, spooler: spooler, maxUpload: maxUpload}
}

func (h *Handler) RegisterRoutes(r *mux.Router, protect func(http.HandlerFunc) http.Handler) {
	videos := r.PathPrefix("/videos").Subrouter()

	videos.Handle("", protect(h.List)).Methods(http.MethodGet)
	videos.Handle("/published-video", protect(h.Publish)).Methods(http.MethodPost)
	videos.Handle("/toggle-status/{videoId}", protect(h.TogglePublish)).Methods(http.MethodPatch)
	videos.Handle("/{videoId}", protect(h.Get)).Methods(http.MethodGet)
	videos.Handle("/{videoId}", protect(h.Update)).Methods(http.MethodPatch)
	videos.Handle("/{videoId}", protect(h.Delete)).Methods(http.MethodDelete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	listing, err := query.VideoListing(r.URL.Query())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	page, err := h.videoService.List(r.Context(), listing)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Videos fetched successfully")
}

func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	if err := media.ParseForm(w, r, h.maxUpload); err != nil {
		common.WriteError(w, r, err)
		return
	}

	videoFile, err := h.spooler.SpoolFormFile(r, "videoFile", true)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer media.Discard(r.Context(), videoFile)

	thumbnail, err := h.spooler.SpoolFormFile(r, "thumbnail", true)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer media.Discard(r.Context(), thumbnail)

	video, err := h.videoService.Publish(r.Context(), owner, PublishInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, video, "Video published successfully")
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := query.ParseObjectID(mux.Vars(r)["videoId"], "videoId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	viewer, _ := common.UserIDFromContext(r.Context())

	video, err := h.videoService.Get(r.Context(), id, viewer)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Video fetched successfully")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	id, err := query.ParseObjectID(mux.Vars(r)["videoId"], "videoId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.videoService.CheckOwner(r.Context(), id, owner); err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := media.ParseForm(w, r, h.maxUpload); err != nil {
		common.WriteError(w, r, err)
		return
	}

	thumbnail, err := h.spooler.SpoolFormFile(r, "thumbnail", false)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer media.Discard(r.Context(), thumbnail)

	video, err := h.videoService.Update(r.Context(), id, owner, UpdateInput{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
		Thumbnail:   thumbnail,
	})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Video updated successfully")
}

// formValue distinguishes an absent field from an empty one.
func formValue(r *http.Request, key string) *string {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	id, err := query.ParseObjectID(mux.Vars(r)["videoId"], "videoId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.videoService.Delete(r.Context(), id, owner); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Video deleted successfully")
}

func (h *Handler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	owner, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	id, err := query.ParseObjectID(mux.Vars(r)["videoId"], "videoId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	video, err := h.videoService.TogglePublish(r.Context(), id, owner)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Video publish status toggled successfully")
}
