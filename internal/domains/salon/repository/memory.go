package repository

import (
	"context"
	"fmt"
	"salon/infras/otel"
	"salon/internal/domains/salon/model"
	"salon/shared/constant"
	"salon/shared/timezone"
	"time"
)

type memoryImpl struct {
	services     *collection[model.Service]
	stylists     *collection[model.Stylist]
	testimonials *collection[model.Testimonial]
	offers       *collection[model.Offer]
	bookings     *collection[model.Booking]
	messages     *collection[model.Message]
	otel         otel.Otel
}

// NewMemory returns a process-local store preloaded with the catalogue.
func NewMemory(otel otel.Otel) Salon {
	return NewMemoryWithClock(otel, timezone.Now)
}

// NewMemoryWithClock is NewMemory with a caller supplied clock for createdAt.
func NewMemoryWithClock(otel otel.Otel, clock func() time.Time) Salon {
	repo := &memoryImpl{
		services:     newCollection[model.Service](clock),
		stylists:     newCollection[model.Stylist](clock),
		testimonials: newCollection[model.Testimonial](clock),
		offers:       newCollection[model.Offer](clock),
		bookings:     newCollection[model.Booking](clock),
		messages:     newCollection[model.Message](clock),
		otel:         otel,
	}

	repo.services.seed(seedServices(), func(s *model.Service, id int) { s.ID = id })
	repo.stylists.seed(seedStylists(), func(s *model.Stylist, id int) { s.ID = id })
	repo.testimonials.seed(seedTestimonials(), func(t *model.Testimonial, id int) { t.ID = id })
	repo.offers.seed(seedOffers(), func(o *model.Offer, id int) { o.ID = id })

	return repo
}

func (r *memoryImpl) scope(ctx context.Context, entity, operation string) otel.Scope {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, entity, operation))

	return scope
}

func (r *memoryImpl) ListServices(ctx context.Context) ([]model.Service, error) {
	defer r.scope(ctx, model.EntityService, "List").End()

	return r.services.list(), nil
}

func (r *memoryImpl) GetService(ctx context.Context, id int) (model.Service, bool, error) {
	defer r.scope(ctx, model.EntityService, "Get").End()

	service, ok := r.services.get(id)

	return service, ok, nil
}

func (r *memoryImpl) ListStylists(ctx context.Context) ([]model.Stylist, error) {
	defer r.scope(ctx, model.EntityStylist, "List").End()

	return r.stylists.list(), nil
}

func (r *memoryImpl) GetStylist(ctx context.Context, id int) (model.Stylist, bool, error) {
	defer r.scope(ctx, model.EntityStylist, "Get").End()

	stylist, ok := r.stylists.get(id)

	return stylist, ok, nil
}

func (r *memoryImpl) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	defer r.scope(ctx, model.EntityTestimonial, "List").End()

	return r.testimonials.list(), nil
}

func (r *memoryImpl) ListOffers(ctx context.Context) ([]model.Offer, error) {
	defer r.scope(ctx, model.EntityOffer, "List").End()

	return r.offers.list(), nil
}

func (r *memoryImpl) CreateBooking(ctx context.Context, insert model.InsertBooking) (model.Booking, error) {
	defer r.scope(ctx, model.EntityBooking, "Create").End()

	booking := r.bookings.insert(func(id int, createdAt time.Time) model.Booking {
		return model.Booking{
			ID:        id,
			Name:      insert.Name,
			Email:     insert.Email,
			Phone:     insert.Phone,
			ServiceID: insert.ServiceID,
			StylistID: insert.StylistID,
			Date:      insert.Date,
			Time:      insert.Time,
			Message:   insert.Message,
			CreatedAt: createdAt,
		}
	})

	return booking, nil
}

func (r *memoryImpl) CreateMessage(ctx context.Context, insert model.InsertMessage) (model.Message, error) {
	defer r.scope(ctx, model.EntityMessage, "Create").End()

	message := r.messages.insert(func(id int, createdAt time.Time) model.Message {
		return model.Message{
			ID:        id,
			Name:      insert.Name,
			Email:     insert.Email,
			Subject:   insert.Subject,
			Message:   insert.Message,
			CreatedAt: createdAt,
		}
	})

	return message, nil
}
