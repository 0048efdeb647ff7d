package salon

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/contract"
	"salon/internal/domains/salon/model/dto"
	"salon/internal/domains/salon/service"
	"salon/shared"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/logger"
	"salon/shared/validator"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Salon
	otel    otel.Otel
}

func New(service service.Salon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Operations binds every contract operation to its handler.
func (handler *Handler) Operations() map[contract.Operation]http.HandlerFunc {
	return map[contract.Operation]http.HandlerFunc{
		contract.OperationListServices:     handler.ListServices,
		contract.OperationGetService:       handler.GetService,
		contract.OperationListStylists:     handler.ListStylists,
		contract.OperationGetStylist:       handler.GetStylist,
		contract.OperationListTestimonials: handler.ListTestimonials,
		contract.OperationListOffers:       handler.ListOffers,
		contract.OperationCreateBooking:    handler.CreateBooking,
		contract.OperationCreateMessage:    handler.CreateMessage,
	}
}

// ListServices returns the service catalogue.
// @Summary List services
// @Tags Services
// @Produce json
// @Success 200 {array} model.Service
// @Failure 500 {object} response.Message
// @Router /api/services [get]
func (handler *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListServices")
	defer scope.End()

	res, err := handler.service.ListServices(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetService returns one service. Ids that are not positive integers are treated as unknown.
// @Summary Get a service
// @Tags Services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} model.Service
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/services/{id} [get]
func (handler *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetService")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))

	res, err := handler.service.GetService(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListStylists returns the team.
// @Summary List stylists
// @Tags Stylists
// @Produce json
// @Success 200 {array} model.Stylist
// @Failure 500 {object} response.Message
// @Router /api/stylists [get]
func (handler *Handler) ListStylists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListStylists")
	defer scope.End()

	res, err := handler.service.ListStylists(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetStylist returns one stylist.
// @Summary Get a stylist
// @Tags Stylists
// @Produce json
// @Param id path int true "Stylist ID"
// @Success 200 {object} model.Stylist
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/stylists/{id} [get]
func (handler *Handler) GetStylist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStylist")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))

	res, err := handler.service.GetStylist(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListTestimonials returns client testimonials.
// @Summary List testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {array} model.Testimonial
// @Failure 500 {object} response.Message
// @Router /api/testimonials [get]
func (handler *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListTestimonials")
	defer scope.End()

	res, err := handler.service.ListTestimonials(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListOffers returns current promotions.
// @Summary List offers
// @Tags Offers
// @Produce json
// @Success 200 {array} model.Offer
// @Failure 500 {object} response.Message
// @Router /api/offers [get]
func (handler *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListOffers")
	defer scope.End()

	res, err := handler.service.ListOffers(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateBooking stores an appointment request.
// @Summary Create a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} model.Booking
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Str("field", failure.GetField(err)).Msg("invalid booking request")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.SetAttribute("booking.id", res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// CreateMessage stores a contact form submission.
// @Summary Send a contact message
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body dto.CreateMessageRequest true "Message"
// @Success 201 {object} model.Message
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/messages [post]
func (handler *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMessage")
	defer scope.End()

	var req dto.CreateMessageRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Str("field", failure.GetField(err)).Msg("invalid message request")
		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateMessage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.SetAttribute("message.id", res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}
