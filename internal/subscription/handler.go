package subscription

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/query"
)

type Handler struct {
	subscriptionService SubscriptionService
}

func NewHandler(subscriptionService SubscriptionService) *Handler {
	return &Handler{subscriptionService: subscriptionService}
}

func (h *Handler) RegisterRoutes(r *mux.Router, protect func(http.HandlerFunc) http.Handler) {
	subs := r.PathPrefix("/subscriptions").Subrouter()

	subs.Handle("/u/{subscriberId}", protect(h.SubscribedChannels)).Methods(http.MethodGet)
	subs.Handle("/{channelId}", protect(h.Toggle)).Methods(http.MethodPost)
	subs.Handle("/{channelId}", protect(h.Subscribers)).Methods(http.MethodGet)
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	channelID, err := query.ParseObjectID(mux.Vars(r)["channelId"], "channelId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	result, err := h.subscriptionService.Toggle(r.Context(), userID, channelID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	message := "Unsubscribed successfully"
	if result.Subscribed {
		message = "Subscribed successfully"
	}
	common.WriteJSON(w, http.StatusOK, result, message)
}

func (h *Handler) Subscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := query.ParseObjectID(mux.Vars(r)["channelId"], "channelId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	params, err := query.ParsePage(r.URL.Query(), query.DefaultLimit)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	page, err := h.subscriptionService.Subscribers(r.Context(), channelID, params)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Subscribers fetched successfully")
}

func (h *Handler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	subscriberID, err := query.ParseObjectID(mux.Vars(r)["subscriberId"], "subscriberId")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	params, err := query.ParsePage(r.URL.Query(), query.DefaultLimit)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	page, err := h.subscriptionService.SubscribedChannels(r.Context(), subscriberID, params)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page, "Subscribed channels fetched successfully")
}
