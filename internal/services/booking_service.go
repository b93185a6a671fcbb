package services

import (
	"fmt"
	"strings"
	"time"

	"mrtravel/internal/domain"
	"mrtravel/internal/domain/models"
	"mrtravel/internal/repositories"
	"mrtravel/internal/utils"
)

// MaxStayNights is the longest stay a single booking may cover.
const MaxStayNights = 365

// BookingService owns the booking lifecycle: every create and cancel runs as
// one Store transaction so inventory and ledger change together.
type BookingService struct {
	Store     *repositories.Store
	Now       func() time.Time
	RequestID string
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// CreateBooking validates in, reserves in.Rooms rooms and records the
// booking as confirmed.
func (s BookingService) CreateBooking(in models.BookingInput) (models.Booking, error) {
	trimAll(&in.HotelID, &in.HotelName, &in.Name, &in.Email, &in.Mobile, &in.CheckIn, &in.CheckOut)
	if err := validateStruct(in); err != nil {
		return models.Booking{}, err
	}
	if !utils.IsEmail(in.Email) {
		return models.Booking{}, domain.ValidationError{Msg: "Invalid email format"}
	}

	checkIn, err := utils.ParseStayDate(in.CheckIn)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "checkIn", Msg: "invalid date", Err: err}
	}
	checkOut, err := utils.ParseStayDate(in.CheckOut)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "checkOut", Msg: "invalid date", Err: err}
	}
	nights := utils.NightsBetween(checkIn, checkOut)
	if nights < 1 {
		return models.Booking{}, domain.ValidationError{Field: "checkOut", Msg: "must be after checkIn"}
	}
	if nights > MaxStayNights {
		return models.Booking{}, domain.ValidationError{Field: "checkOut", Msg: fmt.Sprintf("stay cannot exceed %d nights", MaxStayNights)}
	}

	adults := in.Adults
	if adults == 0 {
		adults = 1
	}
	rooms := in.Rooms
	if rooms == 0 {
		rooms = 1
	}

	var created models.Booking
	err = s.Store.Update(func(tx *repositories.Tx) error {
		hotel, err := tx.FindHotel(in.HotelID)
		if err != nil {
			return err
		}
		if rooms > hotel.RoomsLeft {
			return domain.InsufficientInventoryError{HotelID: hotel.ID, Requested: rooms, Available: hotel.RoomsLeft}
		}

		total := utils.StayTotal(hotel.Price, rooms, nights, in.TotalPrice)
		name := in.HotelName
		if name == "" {
			name = hotel.Name
		}

		if err := tx.AdjustRoomsLeft(hotel.ID, -rooms); err != nil {
			return err
		}
		created, err = tx.InsertBooking(models.Booking{
			HotelID:   hotel.ID,
			HotelName: name,
			GuestDetails: models.GuestDetails{
				Name:   in.Name,
				Email:  in.Email,
				Mobile: in.Mobile,
			},
			BookingDetails: models.StayDetails{
				CheckIn:  in.CheckIn,
				CheckOut: in.CheckOut,
				Nights:   nights,
				Adults:   adults,
				Rooms:    rooms,
			},
			TotalPrice:  total,
			Status:      domain.StatusConfirmed,
			BookingDate: s.now(),
		})
		return err
	})
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("code=%s hotel_id=%s rooms=%d nights=%d",
		created.ConfirmationCode, created.HotelID, rooms, nights))
	return created, nil
}

func (s BookingService) GetBooking(code string) (models.Booking, error) {
	var out models.Booking
	err := s.Store.View(func(tx *repositories.Tx) error {
		b, err := tx.FindBooking(strings.TrimSpace(code))
		out = b
		return err
	})
	return out, err
}

// ListBookingsByEmail returns the bookings whose guest email equals email
// exactly; the result is never nil.
func (s BookingService) ListBookingsByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	err := s.Store.View(func(tx *repositories.Tx) error {
		out = tx.ListBookingsByEmail(email)
		return nil
	})
	return out, err
}

func (s BookingService) ListBookings() ([]models.Booking, error) {
	var out []models.Booking
	err := s.Store.View(func(tx *repositories.Tx) error {
		out = tx.ListBookings()
		return nil
	})
	return out, err
}

// CancelBooking removes the booking and gives its rooms back to the hotel.
// A hotel that no longer exists is skipped; the removal still happens.
func (s BookingService) CancelBooking(code string) error {
	code = strings.TrimSpace(code)
	var (
		removed      models.Booking
		hotelMissing bool
	)
	err := s.Store.Update(func(tx *repositories.Tx) error {
		var err error
		removed, err = tx.DeleteBooking(code)
		if err != nil {
			return err
		}
		if _, err := tx.FindHotel(removed.HotelID); err != nil {
			if domain.IsNotFound(err) {
				hotelMissing = true
				return nil
			}
			return err
		}
		return tx.AdjustRoomsLeft(removed.HotelID, removed.BookingDetails.Rooms)
	})
	if err != nil {
		return err
	}

	if hotelMissing {
		utils.LogEvent(s.RequestID, "booking", "cancel", fmt.Sprintf("code=%s hotel_id=%s missing, inventory not restored", code, removed.HotelID))
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", fmt.Sprintf("code=%s rooms=%d", code, removed.BookingDetails.Rooms))
	return nil
}
