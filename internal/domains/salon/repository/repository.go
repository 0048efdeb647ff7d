package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/salon/model"

	"github.com/rs/zerolog/log"
)

// Salon is the storage contract for the catalogue and for submissions.
// Lookups report absence with a false boolean rather than an error.
type Salon interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, id int) (model.Service, bool, error)
	ListStylists(ctx context.Context) ([]model.Stylist, error)
	GetStylist(ctx context.Context, id int) (model.Stylist, bool, error)
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	ListOffers(ctx context.Context) ([]model.Offer, error)
	CreateBooking(ctx context.Context, booking model.InsertBooking) (model.Booking, error)
	CreateMessage(ctx context.Context, message model.InsertMessage) (model.Message, error)
}

// New picks the backend named by STORAGE_DRIVER.
func New(cfg *config.Config, otel otel.Otel) Salon {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		log.Info().Msg("Using postgres storage")

		return NewPostgres(postgres.New(cfg), otel)
	case config.StorageDriverMemory, "":
		log.Info().Msg("Using in-memory storage with seed data")

		return NewMemory(otel)
	default:
		log.Fatal().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver")

		return nil
	}
}
