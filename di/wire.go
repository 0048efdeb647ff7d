//go:build wireinject
// +build wireinject

package di

import (
	"salon/config"
	"salon/infras/kafka"
	"salon/infras/otel"
	salonHandler "salon/internal/handlers/salon"
	"salon/shared/cache"
	"salon/transport/http"
	"salon/transport/http/middleware"
	"salon/transport/http/router"

	salonRepository "salon/internal/domains/salon/repository"
	salonService "salon/internal/domains/salon/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var salonDomain = wire.NewSet(
	salonRepository.New,
	salonService.New,
)

var domains = wire.NewSet(
	salonDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	salonHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
