package dto

import (
	"salon/internal/contract"
	"salon/internal/domains/salon/model"
	"salon/shared/validator"
)

// CreateBookingRequest is the body of a booking submission. Pointer fields
// distinguish an absent value from a zero one.
type CreateBookingRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	ServiceID *int    `json:"serviceId"`
	StylistID *int    `json:"stylistId"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Message   *string `json:"message"`
}

func (c *CreateBookingRequest) Schema() validator.Schema {
	return contract.API.Bookings.Create.Input
}

func (c *CreateBookingRequest) Values() validator.Values {
	return validator.Values{
		"name":      c.Name,
		"email":     c.Email,
		"phone":     c.Phone,
		"serviceId": c.ServiceID,
		"stylistId": c.StylistID,
		"date":      c.Date,
		"time":      c.Time,
		"message":   c.Message,
	}
}

func (c *CreateBookingRequest) Validate() error {
	return c.Schema().Check(c.Values()) //nolint:wrapcheck
}

// ToModel assumes Validate has passed.
func (c *CreateBookingRequest) ToModel() model.InsertBooking {
	var serviceID int
	if c.ServiceID != nil {
		serviceID = *c.ServiceID
	}

	return model.InsertBooking{
		Name:      value(c.Name),
		Email:     value(c.Email),
		Phone:     value(c.Phone),
		ServiceID: serviceID,
		StylistID: c.StylistID,
		Date:      value(c.Date),
		Time:      value(c.Time),
		Message:   c.Message,
	}
}

type CreateMessageRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

func (c *CreateMessageRequest) Schema() validator.Schema {
	return contract.API.Messages.Create.Input
}

func (c *CreateMessageRequest) Values() validator.Values {
	return validator.Values{
		"name":    c.Name,
		"email":   c.Email,
		"subject": c.Subject,
		"message": c.Message,
	}
}

func (c *CreateMessageRequest) Validate() error {
	return c.Schema().Check(c.Values()) //nolint:wrapcheck
}

func (c *CreateMessageRequest) ToModel() model.InsertMessage {
	return model.InsertMessage{
		Name:    value(c.Name),
		Email:   value(c.Email),
		Subject: value(c.Subject),
		Message: value(c.Message),
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// BookingCreatedEvent is published after a booking is stored.
type BookingCreatedEvent struct {
	Booking model.Booking `json:"booking"`
}

// MessageCreatedEvent is published after a contact message is stored.
type MessageCreatedEvent struct {
	Message model.Message `json:"message"`
}
