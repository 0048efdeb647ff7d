package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"salon/config"
	"salon/infras/kafka"
	kafkaMocks "salon/infras/kafka/mocks"
	otelMocks "salon/infras/otel/mocks"
	"salon/internal/domains/salon/mocks"
	"salon/internal/domains/salon/model"
	"salon/internal/domains/salon/model/dto"
	"salon/internal/domains/salon/service"
	"salon/shared/cache"
	cacheMocks "salon/shared/cache/mocks"
	"salon/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const waitTimeout = time.Second

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Kafka.Topics.BookingCreated = "salon.booking.created"
	cfg.Kafka.Topics.MessageCreated = "salon.message.created"

	return cfg
}

func TestSalonService_GetService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalon(ctrl)
	svc := service.New(mockRepo, testConfig(), cache.NewNoopCache(), otelMocks.NewOtel(), kafka.NewNoopProducer())

	haircut := model.Service{ID: 1, Title: "Signature Haircut & Style", Price: 8500}

	tests := []struct {
		name      string
		id        int
		setupMock func()
		wantCode  int
		wantMsg   string
	}{
		{
			name: "found",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().GetService(gomock.Any(), 1).Return(haircut, true, nil)
			},
		},
		{
			name: "not found",
			id:   7,
			setupMock: func() {
				mockRepo.EXPECT().GetService(gomock.Any(), 7).Return(model.Service{}, false, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Service not found",
		},
		{
			name: "repository error",
			id:   2,
			setupMock: func() {
				mockRepo.EXPECT().GetService(gomock.Any(), 2).Return(model.Service{}, false, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetService(context.Background(), tt.id)

			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, haircut, res)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestSalonService_GetStylistNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalon(ctrl)
	recorder := otelMocks.NewOtel()
	svc := service.New(mockRepo, testConfig(), cache.NewNoopCache(), recorder, kafka.NewNoopProducer())

	mockRepo.EXPECT().GetStylist(gomock.Any(), 99).Return(model.Stylist{}, false, nil)

	_, err := svc.GetStylist(context.Background(), 99)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "Stylist not found", err.Error())
	assert.Contains(t, recorder.Spans(), "service.GetStylist")
	require.Len(t, recorder.Errors(), 1)
}

func TestSalonService_ListsReadThroughCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalon(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(mockRepo, testConfig(), mockCache, otelMocks.NewOtel(), kafka.NewNoopProducer())

	offers := []model.Offer{{ID: 1, Title: "New Client Special"}}
	saved := make(chan struct{})

	mockCache.EXPECT().Get(gomock.Any(), "salon:offers", gomock.Any()).Return(cache.Nil)
	mockRepo.EXPECT().ListOffers(gomock.Any()).Return(offers, nil)
	mockCache.EXPECT().
		Save(gomock.Any(), "salon:offers", offers, 60).
		DoAndReturn(func(context.Context, string, any, int) error {
			close(saved)

			return nil
		})

	res, err := svc.ListOffers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, offers, res)

	select {
	case <-saved:
	case <-time.After(waitTimeout):
		t.Fatal("offers were not saved to cache")
	}
}

func TestSalonService_ListServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalon(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(mockRepo, testConfig(), mockCache, otelMocks.NewOtel(), kafka.NewNoopProducer())

	mockCache.EXPECT().
		Get(gomock.Any(), "salon:testimonials", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*[]model.Testimonial) = []model.Testimonial{{ID: 1, Name: "Jessica M.", Rating: 5}}

			return nil
		})

	res, err := svc.ListTestimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Jessica M.", res[0].Name)
}

func TestSalonService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalon(ctrl)
	svc := service.New(mockRepo, testConfig(), cache.NewNoopCache(), otelMocks.NewOtel(), kafka.NewNoopProducer())

	mockRepo.EXPECT().ListStylists(gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := svc.ListStylists(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestSalonService_CreateBookingPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalon(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	svc := service.New(mockRepo, testConfig(), cache.NewNoopCache(), otelMocks.NewOtel(), mockProducer)

	req := dto.CreateBookingRequest{
		Name:      stringPtr("Jane"),
		Email:     stringPtr("jane@example.com"),
		Phone:     stringPtr("555-0100"),
		ServiceID: intPtr(2),
		Date:      stringPtr("2025-09-01"),
		Time:      stringPtr("10:00"),
	}
	stored := model.Booking{ID: 1, Name: "Jane", ServiceID: 2, CreatedAt: time.Now()}
	published := make(chan kafka.Message, 1)

	mockRepo.EXPECT().CreateBooking(gomock.Any(), req.ToModel()).Return(stored, nil)
	mockProducer.EXPECT().
		SendMessages(gomock.Any(), "salon.booking.created", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			published <- messages[0]

			return errors.New("broker unavailable")
		})

	res, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err, "publish failures never reach the caller")
	assert.Equal(t, stored, res)

	select {
	case message := <-published:
		assert.Equal(t, "1", message.Key)
		assert.Equal(t, dto.BookingCreatedEvent{Booking: stored}, message.Value)
	case <-time.After(waitTimeout):
		t.Fatal("booking event was not published")
	}
}

func TestSalonService_CreateMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalon(ctrl)
	svc := service.New(mockRepo, testConfig(), cache.NewNoopCache(), otelMocks.NewOtel(), kafka.NewNoopProducer())

	req := dto.CreateMessageRequest{
		Name:    stringPtr("Tom"),
		Email:   stringPtr("tom@example.com"),
		Subject: stringPtr("Hours"),
		Message: stringPtr("Open Sunday?"),
	}

	mockRepo.EXPECT().
		CreateMessage(gomock.Any(), req.ToModel()).
		Return(model.Message{ID: 1, Name: "Tom", Email: "tom@example.com", Subject: "Hours", Message: "Open Sunday?"}, nil)

	res, err := svc.CreateMessage(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ID)
	assert.Equal(t, *req.Subject, res.Subject)

	mockRepo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(model.Message{}, errors.New("disk full"))

	_, err = svc.CreateMessage(context.Background(), req)
	require.Error(t, err)
}
