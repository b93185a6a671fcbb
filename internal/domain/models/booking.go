package models

import (
	"time"

	"mrtravel/internal/domain"
)

// GuestDetails identifies who the booking is for.
type GuestDetails struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// StayDetails describes the reserved stay. Dates keep the caller's format.
type StayDetails struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
	Adults   int    `json:"adults"`
	Rooms    int    `json:"rooms"`
}

// Booking is an active ledger entry.
type Booking struct {
	ID               int64         `json:"id"`
	ConfirmationCode string        `json:"confirmationCode"`
	HotelID          string        `json:"hotelId"`
	HotelName        string        `json:"hotelName"`
	GuestDetails     GuestDetails  `json:"guestDetails"`
	BookingDetails   StayDetails   `json:"bookingDetails"`
	TotalPrice       float64       `json:"totalPrice"`
	Status           domain.Status `json:"status"`
	BookingDate      time.Time     `json:"bookingDate"`
}

// BookingInput carries a create request. Adults and Rooms default to 1 when
// zero; TotalPrice overrides the computed price when non-nil and positive.
type BookingInput struct {
	HotelID    string   `validate:"required"`
	HotelName  string
	Name       string   `validate:"required"`
	Email      string   `validate:"required"`
	Mobile     string   `validate:"required"`
	CheckIn    string   `validate:"required"`
	CheckOut   string   `validate:"required"`
	Adults     int      `validate:"gte=0"`
	Rooms      int      `validate:"gte=0"`
	TotalPrice *float64 `validate:"omitempty,gte=0"`
}
