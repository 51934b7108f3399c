package dashboard

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/query"
)

type Handler struct {
	dashboardService DashboardService
}

func NewHandler(dashboardService DashboardService) *Handler {
	return &Handler{dashboardService: dashboardService}
}

func (h *Handler) RegisterRoutes(r *mux.Router, protect func(http.HandlerFunc) http.Handler) {
	dash := r.PathPrefix("/dashboard").Subrouter()

	dash.Handle("", protect(h.ChannelVideos)).Methods(http.MethodGet)
	dash.Handle("/{channelId}", protect(h.ChannelStats)).Methods(http.MethodGet)
}

func (h *Handler) ChannelStats(w http.ResponseWriter, r *http.Request) {
	channelID, err := query.ParseObjectID(mux.Vars(r)["channelId"], "channelId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	stats, err := h.dashboardService.ChannelStats(r.Context(), channelID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *Handler) ChannelVideos(w http.ResponseWriter, r *http.Request) {
	listing, channelID, err := query.ChannelVideoListing(r.URL.Query())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	page, err := h.dashboardService.ChannelVideos(r.Context(), channelID, listing)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Channel videos fetched successfully")
}
