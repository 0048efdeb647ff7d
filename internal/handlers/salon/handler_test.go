package salon_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"salon/config"
	"salon/infras/kafka"
	otelMocks "salon/infras/otel/mocks"
	"salon/internal/contract"
	"salon/internal/domains/salon/mocks"
	"salon/internal/domains/salon/model"
	"salon/internal/domains/salon/service"
	"salon/internal/handlers/salon"
	"salon/shared/cache"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandler(t *testing.T) (salon.Handler, *mocks.MockSalon) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSalon(ctrl)
	ot := otelMocks.NewOtel()
	svc := service.New(mockRepo, &config.Config{}, cache.NewNoopCache(), ot, kafka.NewNoopProducer())

	return salon.New(svc, ot), mockRepo
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestOperationsCoverContract(t *testing.T) {
	handler, _ := newHandler(t)
	operations := handler.Operations()

	for _, endpoint := range contract.API.Endpoints() {
		assert.NotNil(t, operations[endpoint.Operation], "missing handler for %s", endpoint.Operation)
	}

	assert.Len(t, operations, len(contract.API.Endpoints()))
}

func TestGetService(t *testing.T) {
	handler, mockRepo := newHandler(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantCode  int
		wantBody  string
	}{
		{
			name: "found",
			id:   "2",
			setupMock: func() {
				mockRepo.EXPECT().GetService(gomock.Any(), 2).Return(model.Service{ID: 2, Title: "Balayage & Color Correction"}, true, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "unparseable id looks up zero",
			id:   "two",
			setupMock: func() {
				mockRepo.EXPECT().GetService(gomock.Any(), 0).Return(model.Service{}, false, nil)
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Service not found"}`,
		},
		{
			name: "storage failure",
			id:   "3",
			setupMock: func() {
				mockRepo.EXPECT().GetService(gomock.Any(), 3).Return(model.Service{}, false, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			rec := httptest.NewRecorder()
			handler.GetService(rec, withID(httptest.NewRequest(http.MethodGet, "/api/services/"+tt.id, nil), tt.id))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestListOffersFailure(t *testing.T) {
	handler, mockRepo := newHandler(t)

	mockRepo.EXPECT().ListOffers(gomock.Any()).Return(nil, errors.New("timeout"))

	rec := httptest.NewRecorder()
	handler.ListOffers(rec, httptest.NewRequest(http.MethodGet, "/api/offers", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
}

func TestCreateMessageValidation(t *testing.T) {
	handler, _ := newHandler(t)

	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{
			name:     "empty body",
			body:     "",
			wantBody: `{"message":"Invalid request body"}`,
		},
		{
			name:     "missing subject",
			body:     `{"name":"Tom","email":"tom@example.com","message":"hi"}`,
			wantBody: `{"message":"subject is required","field":"subject"}`,
		},
		{
			name:     "bad email",
			body:     `{"name":"Tom","email":"tom","subject":"s","message":"hi"}`,
			wantBody: `{"message":"email must be a valid email address","field":"email"}`,
		},
		{
			name:     "wrong type",
			body:     `{"name":7,"email":"tom@example.com","subject":"s","message":"hi"}`,
			wantBody: `{"message":"name must be a string","field":"name"}`,
		},
		{
			name:     "array body",
			body:     `[]`,
			wantBody: `{"message":"Expected object, received array","field":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.CreateMessage(rec, httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCreateBooking(t *testing.T) {
	handler, mockRepo := newHandler(t)

	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, insert model.InsertBooking) (model.Booking, error) {
			return model.Booking{ID: 1, Name: insert.Name, ServiceID: insert.ServiceID, StylistID: insert.StylistID}, nil
		})

	body := `{"name":"Jane","email":"jane@example.com","phone":"555","serviceId":4,"date":"2025-09-01","time":"10:00"}`

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"serviceId":4`)
	assert.Contains(t, rec.Body.String(), `"stylistId":null`)
}

func TestCreateMessageAcceptsEmptyStrings(t *testing.T) {
	handler, mockRepo := newHandler(t)

	mockRepo.EXPECT().
		CreateMessage(gomock.Any(), model.InsertMessage{Name: "A", Email: "a@b.com", Subject: "Hi", Message: ""}).
		Return(model.Message{ID: 1, Name: "A", Email: "a@b.com", Subject: "Hi"}, nil)

	body := `{"name":"A","email":"a@b.com","subject":"Hi","message":""}`

	rec := httptest.NewRecorder()
	handler.CreateMessage(rec, httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":""`)
}

func TestCreateBookingReportsViolationsInFieldOrder(t *testing.T) {
	handler, _ := newHandler(t)

	body := `{"email":"a@b.com","phone":"1","serviceId":"x","date":"d","time":"t"}`

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"name is required","field":"name"}`, rec.Body.String())
}
