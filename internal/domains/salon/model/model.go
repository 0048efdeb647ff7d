package model

import (
	"time"

	"github.com/lib/pq"
)

const (
	EntityService     = "Service"
	EntityStylist     = "Stylist"
	EntityTestimonial = "Testimonial"
	EntityOffer       = "Offer"
	EntityBooking     = "Booking"
	EntityMessage     = "Message"
)

const (
	TableServices     = "services"
	TableStylists     = "stylists"
	TableTestimonials = "testimonials"
	TableOffers       = "offers"
	TableBookings     = "bookings"
	TableMessages     = "messages"
)

// Service is a bookable treatment. Price is in minor currency units, Duration in minutes.
type Service struct {
	ID          int    `db:"id"          json:"id"`
	Title       string `db:"title"       json:"title"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category"    json:"category"`
	Price       int    `db:"price"       json:"price"`
	Duration    int    `db:"duration"    json:"duration"`
	Image       string `db:"image"       json:"image"`
	IsFeatured  bool   `db:"is_featured" json:"isFeatured"`
}

// Stylist is a team member. Specialties maps to a Postgres text[] column.
type Stylist struct {
	ID          int            `db:"id"          json:"id"`
	Name        string         `db:"name"        json:"name"`
	Role        string         `db:"role"        json:"role"`
	Bio         string         `db:"bio"         json:"bio"`
	Image       string         `db:"image"       json:"image"`
	Specialties pq.StringArray `db:"specialties" json:"specialties"`
}

type Testimonial struct {
	ID      int     `db:"id"      json:"id"`
	Name    string  `db:"name"    json:"name"`
	Role    *string `db:"role"    json:"role"`
	Content string  `db:"content" json:"content"`
	Rating  int     `db:"rating"  json:"rating"`
	Avatar  *string `db:"avatar"  json:"avatar"`
}

type Offer struct {
	ID          int     `db:"id"          json:"id"`
	Title       string  `db:"title"       json:"title"`
	Description string  `db:"description" json:"description"`
	Code        *string `db:"code"        json:"code"`
	Discount    string  `db:"discount"    json:"discount"`
	Expiry      *string `db:"expiry"      json:"expiry"`
}

// Booking is an appointment request. ServiceID and StylistID are stored as given;
// they are not checked against the catalogue.
type Booking struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Phone     string    `db:"phone"      json:"phone"`
	ServiceID int       `db:"service_id" json:"serviceId"`
	StylistID *int      `db:"stylist_id" json:"stylistId"`
	Date      string    `db:"date"       json:"date"`
	Time      string    `db:"time"       json:"time"`
	Message   *string   `db:"message"    json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// InsertBooking is a Booking without the fields the repository assigns.
type InsertBooking struct {
	Name      string  `db:"name"`
	Email     string  `db:"email"`
	Phone     string  `db:"phone"`
	ServiceID int     `db:"service_id"`
	StylistID *int    `db:"stylist_id"`
	Date      string  `db:"date"`
	Time      string  `db:"time"`
	Message   *string `db:"message"`
}

// Message is a contact form submission.
type Message struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Subject   string    `db:"subject"    json:"subject"`
	Message   string    `db:"message"    json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type InsertMessage struct {
	Name    string `db:"name"`
	Email   string `db:"email"`
	Subject string `db:"subject"`
	Message string `db:"message"`
}
