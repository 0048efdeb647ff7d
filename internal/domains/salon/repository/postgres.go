package repository

import (
	"context"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/salon/model"
	gRepo "salon/shared/repository"
	"salon/shared/timezone"
)

const fieldID = "id"

type postgresImpl struct {
	services     gRepo.Table[model.Service]
	stylists     gRepo.Table[model.Stylist]
	testimonials gRepo.Table[model.Testimonial]
	offers       gRepo.Table[model.Offer]
	bookings     gRepo.Table[model.Booking]
	messages     gRepo.Table[model.Message]
	db           *postgres.Connection
}

// NewPostgres stores everything in Postgres. The tables and their catalogue rows
// are expected to exist already; ids and createdAt are assigned by the database.
func NewPostgres(db *postgres.Connection, otel otel.Otel) Salon {
	return &postgresImpl{
		services:     gRepo.NewTable[model.Service](model.EntityService, model.TableServices, fieldID, db, otel),
		stylists:     gRepo.NewTable[model.Stylist](model.EntityStylist, model.TableStylists, fieldID, db, otel),
		testimonials: gRepo.NewTable[model.Testimonial](model.EntityTestimonial, model.TableTestimonials, fieldID, db, otel),
		offers:       gRepo.NewTable[model.Offer](model.EntityOffer, model.TableOffers, fieldID, db, otel),
		bookings:     gRepo.NewTable[model.Booking](model.EntityBooking, model.TableBookings, fieldID, db, otel),
		messages:     gRepo.NewTable[model.Message](model.EntityMessage, model.TableMessages, fieldID, db, otel),
		db:           db,
	}
}

func (r *postgresImpl) ListServices(ctx context.Context) ([]model.Service, error) {
	return r.services.GetAll(ctx) //nolint:wrapcheck
}

func (r *postgresImpl) GetService(ctx context.Context, id int) (model.Service, bool, error) {
	return r.services.Get(ctx, id) //nolint:wrapcheck
}

func (r *postgresImpl) ListStylists(ctx context.Context) ([]model.Stylist, error) {
	return r.stylists.GetAll(ctx) //nolint:wrapcheck
}

func (r *postgresImpl) GetStylist(ctx context.Context, id int) (model.Stylist, bool, error) {
	return r.stylists.Get(ctx, id) //nolint:wrapcheck
}

func (r *postgresImpl) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return r.testimonials.GetAll(ctx) //nolint:wrapcheck
}

func (r *postgresImpl) ListOffers(ctx context.Context) ([]model.Offer, error) {
	return r.offers.GetAll(ctx) //nolint:wrapcheck
}

func (r *postgresImpl) CreateBooking(ctx context.Context, booking model.InsertBooking) (model.Booking, error) {
	res, err := r.bookings.Insert(ctx, booking)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.CreatedAt = timezone.ToAppTime(res.CreatedAt)

	return res, nil
}

func (r *postgresImpl) CreateMessage(ctx context.Context, message model.InsertMessage) (model.Message, error) {
	res, err := r.messages.Insert(ctx, message)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.CreatedAt = timezone.ToAppTime(res.CreatedAt)

	return res, nil
}

// Close releases both connection pools.
func (r *postgresImpl) Close() error {
	return r.db.Close() //nolint:wrapcheck
}
