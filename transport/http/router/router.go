package router

import (
	"fmt"
	"net/http"
	"salon/config"
	"salon/internal/contract"
	"salon/internal/handlers/salon"
	"salon/transport/http/middleware"

	_ "salon/docs"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	metricsPath = "/metrics"
	swaggerPath = "/swagger/*"
)

type DomainHandlers struct {
	Salon salon.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

// SetupRoutes installs the middleware chain and mounts every contract endpoint
// on its handler. A contract operation without a handler is a programming error
// and panics at startup.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middleware.RequestID,
		r.Middleware.AccessLog,
		r.Middleware.Tracing,
		r.Middleware.Metrics,
		r.Middleware.Recover,
		r.Middleware.CORS(),
		r.Middleware.RateLimit(),
	)

	operations := r.DomainHandlers.Salon.Operations()

	for _, endpoint := range contract.API.Endpoints() {
		handler, ok := operations[endpoint.Operation]
		if !ok {
			panic(fmt.Sprintf("no handler for operation %s (%s %s)", endpoint.Operation, endpoint.Method, endpoint.Path))
		}

		router.Method(endpoint.Method, endpoint.Pattern(), handler)
	}

	router.Method(http.MethodGet, metricsPath, promhttp.Handler())

	if r.Config.App.Swagger.Enable {
		router.Get(swaggerPath, httpSwagger.WrapHandler)

		log.Info().Msg("Swagger UI mounted at /swagger/index.html")
	}
}

func New(cfg *config.Config, domainHandlers DomainHandlers, middleware middleware.AppMiddleware) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
