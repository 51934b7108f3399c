package main

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/media"
	"vidtube/internal/middleware"
)

const apiPrefix = "/api/v1"

// routeRegistrar is implemented by every domain handler.
type routeRegistrar interface {
	RegisterRoutes(r *mux.Router, protect func(http.HandlerFunc) http.Handler)
}

type routerDeps struct {
	Logger     *slog.Logger
	CORSOrigin string
	Auth       *middleware.Authenticator
	Limiter    middleware.RateLimiter
	Media      *media.HTTPServer
}

// newHandler mounts every registrar under /api/v1 and wraps the router in
// request logging, CORS and rate limiting, outermost first.
func newHandler(deps routerDeps, registrars ...routeRegistrar) http.Handler {
	router := mux.NewRouter()

	if deps.Media != nil {
		deps.Media.Register(router)
	}

	api := router.PathPrefix(apiPrefix).Subrouter()
	api.HandleFunc("/healthcheck", healthcheck).Methods(http.MethodGet)

	protect := func(h http.HandlerFunc) http.Handler {
		return deps.Auth.Middleware(h)
	}
	for _, reg := range registrars {
		reg.RegisterRoutes(api, protect)
	}

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		common.WriteError(w, r, common.ErrNotFound("Route not found"))
	})

	var handler http.Handler = router
	handler = middleware.RateLimit(deps.Limiter)(handler)
	handler = middleware.CORS(deps.CORSOrigin)(handler)
	handler = middleware.RequestLogger(deps.Logger)(handler)
	return handler
}

func healthcheck(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, "OK")
}
