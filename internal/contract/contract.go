// Package contract is the single description of the public API: every endpoint's
// method, path template, input schema and response shapes. It holds data only; the
// router mounts handlers from it and clients build URLs from it.
package contract

import (
	"fmt"
	"net/http"
	"net/url"
	"salon/shared/validator"
	"strings"
)

const placeholderPrefix = ":"

type Operation string

const (
	OperationListServices     Operation = "services.list"
	OperationGetService       Operation = "services.get"
	OperationListStylists     Operation = "stylists.list"
	OperationGetStylist       Operation = "stylists.get"
	OperationListTestimonials Operation = "testimonials.list"
	OperationListOffers       Operation = "offers.list"
	OperationCreateBooking    Operation = "bookings.create"
	OperationCreateMessage    Operation = "messages.create"
)

// Response shape names, keyed by status code in Endpoint.Responses.
const (
	ShapeServiceList     = "Service[]"
	ShapeService         = "Service"
	ShapeStylistList     = "Stylist[]"
	ShapeStylist         = "Stylist"
	ShapeTestimonialList = "Testimonial[]"
	ShapeOfferList       = "Offer[]"
	ShapeBooking         = "Booking"
	ShapeMessage         = "Message"
	ShapeNotFound        = "NotFound"
	ShapeValidation      = "Validation"
)

// Endpoint describes one operation. Path uses ":name" placeholders; Input is nil
// for operations without a request body.
type Endpoint struct {
	Operation Operation
	Method    string
	Path      string
	Input     validator.Schema
	Responses map[int]string
}

// Pattern returns Path in router syntax, with ":name" segments written as "{name}".
func (e Endpoint) Pattern() string {
	segments := strings.Split(e.Path, "/")
	for i, segment := range segments {
		if name, ok := strings.CutPrefix(segment, placeholderPrefix); ok {
			segments[i] = "{" + name + "}"
		}
	}

	return strings.Join(segments, "/")
}

// URL fills the endpoint's path template with params.
func (e Endpoint) URL(params map[string]any) string {
	return BuildURL(e.Path, params)
}

// Match reports whether a concrete request targets this endpoint and returns the
// placeholder values it captured.
func (e Endpoint) Match(method, path string) (map[string]string, bool) {
	if !strings.EqualFold(method, e.Method) {
		return nil, false
	}

	want := strings.Split(strings.TrimSuffix(e.Path, "/"), "/")
	got := strings.Split(strings.TrimSuffix(path, "/"), "/")

	if len(want) != len(got) {
		return nil, false
	}

	params := map[string]string{}

	for i := range want {
		if name, ok := strings.CutPrefix(want[i], placeholderPrefix); ok {
			if got[i] == "" {
				return nil, false
			}

			params[name] = got[i]

			continue
		}

		if want[i] != got[i] {
			return nil, false
		}
	}

	return params, true
}

// Catalogue groups the read endpoints of an entity that supports single lookups.
type Catalogue struct {
	List Endpoint
	Get  Endpoint
}

// Listing groups the read endpoint of a list-only entity.
type Listing struct {
	List Endpoint
}

// Submission groups the create endpoint of a write-only entity.
type Submission struct {
	Create Endpoint
}

type Registry struct {
	Services     Catalogue
	Stylists     Catalogue
	Testimonials Listing
	Offers       Listing
	Bookings     Submission
	Messages     Submission
}

// InsertBookingSchema validates a booking request. Field order follows the
// booking record so the first violation reported matches the field order clients see.
// Required strings must be present; an empty string is a value.
var InsertBookingSchema = validator.Schema{
	{Field: "name", Tag: "required"},
	{Field: "email", Tag: "required,email"},
	{Field: "phone", Tag: "required"},
	{Field: "serviceId", Tag: "required"},
	{Field: "stylistId", Tag: "omitempty"},
	{Field: "date", Tag: "required"},
	{Field: "time", Tag: "required"},
	{Field: "message", Tag: "omitempty"},
}

// InsertMessageSchema validates a contact message.
var InsertMessageSchema = validator.Schema{
	{Field: "name", Tag: "required"},
	{Field: "email", Tag: "required,email"},
	{Field: "subject", Tag: "required"},
	{Field: "message", Tag: "required"},
}

var API = Registry{
	Services: Catalogue{
		List: Endpoint{
			Operation: OperationListServices,
			Method:    http.MethodGet,
			Path:      "/api/services",
			Responses: map[int]string{http.StatusOK: ShapeServiceList},
		},
		Get: Endpoint{
			Operation: OperationGetService,
			Method:    http.MethodGet,
			Path:      "/api/services/:id",
			Responses: map[int]string{http.StatusOK: ShapeService, http.StatusNotFound: ShapeNotFound},
		},
	},
	Stylists: Catalogue{
		List: Endpoint{
			Operation: OperationListStylists,
			Method:    http.MethodGet,
			Path:      "/api/stylists",
			Responses: map[int]string{http.StatusOK: ShapeStylistList},
		},
		Get: Endpoint{
			Operation: OperationGetStylist,
			Method:    http.MethodGet,
			Path:      "/api/stylists/:id",
			Responses: map[int]string{http.StatusOK: ShapeStylist, http.StatusNotFound: ShapeNotFound},
		},
	},
	Testimonials: Listing{
		List: Endpoint{
			Operation: OperationListTestimonials,
			Method:    http.MethodGet,
			Path:      "/api/testimonials",
			Responses: map[int]string{http.StatusOK: ShapeTestimonialList},
		},
	},
	Offers: Listing{
		List: Endpoint{
			Operation: OperationListOffers,
			Method:    http.MethodGet,
			Path:      "/api/offers",
			Responses: map[int]string{http.StatusOK: ShapeOfferList},
		},
	},
	Bookings: Submission{
		Create: Endpoint{
			Operation: OperationCreateBooking,
			Method:    http.MethodPost,
			Path:      "/api/bookings",
			Input:     InsertBookingSchema,
			Responses: map[int]string{http.StatusCreated: ShapeBooking, http.StatusBadRequest: ShapeValidation},
		},
	},
	Messages: Submission{
		Create: Endpoint{
			Operation: OperationCreateMessage,
			Method:    http.MethodPost,
			Path:      "/api/messages",
			Input:     InsertMessageSchema,
			Responses: map[int]string{http.StatusCreated: ShapeMessage, http.StatusBadRequest: ShapeValidation},
		},
	},
}

// Endpoints returns every endpoint in declaration order.
func (r Registry) Endpoints() []Endpoint {
	return []Endpoint{
		r.Services.List,
		r.Services.Get,
		r.Stylists.List,
		r.Stylists.Get,
		r.Testimonials.List,
		r.Offers.List,
		r.Bookings.Create,
		r.Messages.Create,
	}
}

// Lookup finds the endpoint serving a concrete request.
func (r Registry) Lookup(method, path string) (Endpoint, map[string]string, bool) {
	for _, endpoint := range r.Endpoints() {
		if params, ok := endpoint.Match(method, path); ok {
			return endpoint, params, true
		}
	}

	return Endpoint{}, nil, false
}

// BuildURL substitutes ":name" segments of path with the matching params.
// Params without a matching placeholder are ignored; values are path-escaped.
func BuildURL(path string, params map[string]any) string {
	if len(params) == 0 {
		return path
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		name, ok := strings.CutPrefix(segment, placeholderPrefix)
		if !ok {
			continue
		}

		if value, found := params[name]; found {
			segments[i] = url.PathEscape(fmt.Sprint(value))
		}
	}

	return strings.Join(segments, "/")
}
