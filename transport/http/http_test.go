package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"salon/config"
	"salon/infras/kafka"
	otelMocks "salon/infras/otel/mocks"
	"salon/internal/contract"
	"salon/internal/domains/salon/repository"
	"salon/internal/domains/salon/service"
	salonHandler "salon/internal/handlers/salon"
	"salon/shared/cache"
	transportHTTP "salon/transport/http"
	"salon/transport/http/middleware"
	"salon/transport/http/router"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *transportHTTP.HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "salon"

	ot := otelMocks.NewOtel()
	noopCache := cache.NewNoopCache()
	producer := kafka.NewNoopProducer()
	repo := repository.NewMemory(ot)
	svc := service.New(repo, cfg, noopCache, ot, producer)

	r := router.New(cfg, router.DomainHandlers{Salon: salonHandler.New(svc, ot)}, middleware.NewAppMiddleware(ot, cfg, noopCache))

	return transportHTTP.New(cfg, r, ot, producer, repo)
}

func do(t *testing.T, server http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer

	switch b := body.(type) {
	case nil:
	case string:
		payload.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&payload).Encode(b))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func TestHealth(t *testing.T) {
	server := newServer(t)

	rec := do(t, server, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
	assert.Equal(t, transportHTTP.ServerStateReady, server.State())
}

func TestServicesListAndGet(t *testing.T) {
	server := newServer(t)

	rec := do(t, server, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	services := decode[[]map[string]any](t, rec)
	require.Len(t, services, 6)
	assert.Equal(t, "Signature Haircut & Style", services[0]["title"])
	assert.EqualValues(t, 8500, services[0]["price"])
	assert.Equal(t, true, services[0]["isFeatured"])

	for _, service := range services {
		path := contract.API.Services.Get.URL(map[string]any{"id": service["id"]})

		rec = do(t, server, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, service, decode[map[string]any](t, rec))
	}
}

func TestGetServiceWithIntegralDecimalID(t *testing.T) {
	server := newServer(t)

	rec := do(t, server, http.MethodGet, "/api/services/1.0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, rec)["id"])
}

func TestUnknownIDs(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{name: "stylist 99", path: "/api/stylists/99", wantBody: `{"message":"Stylist not found"}`},
		{name: "service 7", path: "/api/services/7", wantBody: `{"message":"Service not found"}`},
		{name: "non numeric", path: "/api/services/abc", wantBody: `{"message":"Service not found"}`},
		{name: "zero", path: "/api/stylists/0", wantBody: `{"message":"Stylist not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, server, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCatalogueLists(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/stylists", want: 3},
		{path: "/api/testimonials", want: 3},
		{path: "/api/offers", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, server, http.MethodGet, tt.path, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Len(t, decode[[]map[string]any](t, rec), tt.want)
		})
	}
}

func TestCreateBooking(t *testing.T) {
	server := newServer(t)

	booking := map[string]any{
		"name":      "Jane Doe",
		"email":     "jane@example.com",
		"phone":     "555-0100",
		"serviceId": 1,
		"date":      "2025-09-01",
		"time":      "10:00",
	}

	first := do(t, server, http.MethodPost, "/api/bookings", booking)
	require.Equal(t, http.StatusCreated, first.Code)

	created := decode[map[string]any](t, first)
	assert.EqualValues(t, 1, created["id"])
	assert.Equal(t, "Jane Doe", created["name"])
	assert.Contains(t, created, "stylistId")
	assert.Nil(t, created["stylistId"], "absent stylistId is null")
	assert.Contains(t, created, "message")
	assert.Nil(t, created["message"], "absent message is null")

	firstCreatedAt, err := time.Parse(time.RFC3339Nano, created["createdAt"].(string))
	require.NoError(t, err)

	booking["stylistId"] = 2
	booking["message"] = "Window seat please"

	second := do(t, server, http.MethodPost, "/api/bookings", booking)
	require.Equal(t, http.StatusCreated, second.Code)

	next := decode[map[string]any](t, second)
	assert.EqualValues(t, 2, next["id"])
	assert.EqualValues(t, 2, next["stylistId"])
	assert.Equal(t, "Window seat please", next["message"])

	secondCreatedAt, err := time.Parse(time.RFC3339Nano, next["createdAt"].(string))
	require.NoError(t, err)
	assert.False(t, secondCreatedAt.Before(firstCreatedAt))
}

func TestCreateBookingRejectsInvalidInput(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name      string
		body      any
		wantField string
		wantBody  string
	}{
		{
			name: "missing email",
			body: map[string]any{
				"name": "Jane", "phone": "555", "serviceId": 1, "date": "2025-09-01", "time": "10:00",
			},
			wantField: "email",
		},
		{
			name: "service id as string",
			body: map[string]any{
				"name": "Jane", "email": "jane@example.com", "phone": "555", "serviceId": "one", "date": "2025-09-01", "time": "10:00",
			},
			wantField: "serviceId",
		},
		{
			name: "missing name reported before a later type mismatch",
			body: map[string]any{
				"email": "a@b.com", "phone": "1", "serviceId": "x", "date": "d", "time": "t",
			},
			wantField: "name",
		},
		{
			name:     "malformed json",
			body:     `{"name": "Jane",`,
			wantBody: `{"message":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, server, http.MethodPost, "/api/bookings", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())

				return
			}

			body := decode[map[string]any](t, rec)
			assert.Equal(t, tt.wantField, body["field"])
			assert.NotEmpty(t, body["message"])
		})
	}

	// Rejected submissions do not consume ids.
	rec := do(t, server, http.MethodPost, "/api/bookings", map[string]any{
		"name": "Jane", "email": "jane@example.com", "phone": "555", "serviceId": 1, "date": "2025-09-01", "time": "10:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, rec)["id"])
}

func TestCreateMessage(t *testing.T) {
	server := newServer(t)
	before := time.Now().Add(-time.Second)

	message := map[string]any{
		"name":    "Tom",
		"email":   "tom@example.com",
		"subject": "Opening hours",
		"message": "Are you open on Sunday?",
	}

	rec := do(t, server, http.MethodPost, "/api/messages", message)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[map[string]any](t, rec)
	assert.EqualValues(t, 1, created["id"])

	for key, value := range message {
		assert.Equal(t, value, created[key])
	}

	createdAt, err := time.Parse(time.RFC3339Nano, created["createdAt"].(string))
	require.NoError(t, err)
	assert.WithinRange(t, createdAt, before, time.Now().Add(time.Second))
}

func TestCreateMessageKeepsEmptyStrings(t *testing.T) {
	server := newServer(t)

	message := map[string]any{"name": "A", "email": "a@b.com", "subject": "Hi", "message": ""}

	rec := do(t, server, http.MethodPost, "/api/messages", message)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[map[string]any](t, rec)
	for key, value := range message {
		assert.Equal(t, value, created[key])
	}
}

func TestUnknownRoute(t *testing.T) {
	server := newServer(t)

	assert.Equal(t, http.StatusNotFound, do(t, server, http.MethodGet, "/api/unknown", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, server, http.MethodDelete, "/api/services", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	server := newServer(t)

	do(t, server, http.MethodGet, "/api/offers", nil)

	rec := do(t, server, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "salon_http_requests_total")
}
