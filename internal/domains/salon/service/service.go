package service

import (
	"context"
	"fmt"
	"strconv"

	"salon/config"
	"salon/infras/kafka"
	"salon/infras/otel"
	"salon/internal/domains/salon/model"
	"salon/internal/domains/salon/model/dto"
	"salon/internal/domains/salon/repository"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllServices     = "salon:services"
	cacheGetService         = "salon:service"
	cacheGetAllStylists     = "salon:stylists"
	cacheGetStylist         = "salon:stylist"
	cacheGetAllTestimonials = "salon:testimonials"
	cacheGetAllOffers       = "salon:offers"
)

type Salon interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, id int) (model.Service, error)
	ListStylists(ctx context.Context) ([]model.Stylist, error)
	GetStylist(ctx context.Context, id int) (model.Stylist, error)
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	ListOffers(ctx context.Context) ([]model.Offer, error)
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error)
	CreateMessage(ctx context.Context, req dto.CreateMessageRequest) (model.Message, error)
}

type serviceImpl struct {
	repo     repository.Salon
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	producer kafka.Producer
}

func New(repo repository.Salon, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, producer kafka.Producer) Salon {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		producer: producer,
	}
}

func notFound(entity string) error {
	return failure.NotFound(entity + " not found")
}

// cached serves key from the cache and falls back to load on a miss. Only
// successful loads are stored; the save happens off the request path.
func cached[T any](ctx context.Context, s *serviceImpl, key string, load func() (T, bool, error)) (T, bool, error) {
	var res T

	if err := s.cache.Get(ctx, key, &res); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return res, true, nil
	}

	res, found, err := load()
	if err != nil || !found {
		return res, found, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save to cache")
		}
	}()

	return res, true, nil
}

func cachedList[T any](ctx context.Context, s *serviceImpl, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	res, _, err := cached(ctx, s, key, func() ([]T, bool, error) {
		rows, err := load(ctx)

		return rows, true, err
	})

	return res, err
}

func (s *serviceImpl) ListServices(ctx context.Context) (res []model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = cachedList(ctx, s, cacheGetAllServices, s.repo.ListServices)
	if err != nil {
		log.Error().Err(err).Msg("failed to list services")

		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetService(ctx context.Context, id int) (res model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("service.id", id)

	res, found, err := cached(ctx, s, shared.BuildCacheKey(cacheGetService, strconv.Itoa(id)), func() (model.Service, bool, error) {
		return s.repo.GetService(ctx, id)
	})
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if !found {
		return res, notFound(model.EntityService)
	}

	return res, nil
}

func (s *serviceImpl) ListStylists(ctx context.Context) (res []model.Stylist, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListStylists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = cachedList(ctx, s, cacheGetAllStylists, s.repo.ListStylists)
	if err != nil {
		log.Error().Err(err).Msg("failed to list stylists")

		return nil, fmt.Errorf("failed to list stylists: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetStylist(ctx context.Context, id int) (res model.Stylist, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStylist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("stylist.id", id)

	res, found, err := cached(ctx, s, shared.BuildCacheKey(cacheGetStylist, strconv.Itoa(id)), func() (model.Stylist, bool, error) {
		return s.repo.GetStylist(ctx, id)
	})
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get stylist")

		return res, fmt.Errorf("failed to get stylist: %w", err)
	}

	if !found {
		return res, notFound(model.EntityStylist)
	}

	return res, nil
}

func (s *serviceImpl) ListTestimonials(ctx context.Context) (res []model.Testimonial, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListTestimonials")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = cachedList(ctx, s, cacheGetAllTestimonials, s.repo.ListTestimonials)
	if err != nil {
		log.Error().Err(err).Msg("failed to list testimonials")

		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ListOffers(ctx context.Context) (res []model.Offer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListOffers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = cachedList(ctx, s, cacheGetAllOffers, s.repo.ListOffers)
	if err != nil {
		log.Error().Err(err).Msg("failed to list offers")

		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.CreateBooking(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, s.cfg.Kafka.Topics.BookingCreated, kafka.Message{
		Key:   strconv.Itoa(res.ID),
		Value: dto.BookingCreatedEvent{Booking: res},
	})

	return res, nil
}

func (s *serviceImpl) CreateMessage(ctx context.Context, req dto.CreateMessageRequest) (res model.Message, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMessage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.CreateMessage(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create message")

		return res, fmt.Errorf("failed to create message: %w", err)
	}

	s.publish(ctx, s.cfg.Kafka.Topics.MessageCreated, kafka.Message{
		Key:   strconv.Itoa(res.ID),
		Value: dto.MessageCreatedEvent{Message: res},
	})

	return res, nil
}

// publish sends the event in the background; delivery failures are logged and
// never reach the caller.
func (s *serviceImpl) publish(ctx context.Context, topic string, message kafka.Message) {
	go func() {
		c, scope := s.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
		defer scope.End()

		scope.SetAttribute("messaging.destination", topic)

		if err := s.producer.SendMessages(c, topic, message); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("topic", topic).Str("key", message.Key).Msg("failed to publish event")
		}
	}()
}
