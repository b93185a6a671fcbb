package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtravel/internal/domain/models"
	"mrtravel/internal/http/middleware"
	"mrtravel/internal/services"
)

type bookingRequest struct {
	HotelID    string   `json:"hotelId"`
	HotelName  string   `json:"hotelName"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Mobile     string   `json:"mobile"`
	CheckIn    string   `json:"checkIn"`
	CheckOut   string   `json:"checkOut"`
	Adults     int      `json:"adults"`
	Rooms      int      `json:"rooms"`
	TotalPrice *float64 `json:"totalPrice"`
}

func (r bookingRequest) input() models.BookingInput {
	return models.BookingInput{
		HotelID:    r.HotelID,
		HotelName:  r.HotelName,
		Name:       r.Name,
		Email:      r.Email,
		Mobile:     r.Mobile,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Adults:     r.Adults,
		Rooms:      r.Rooms,
		TotalPrice: r.TotalPrice,
	}
}

// POST /api/book
func (h *Handler) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	booking, err := h.bookingService(c).CreateBooking(req.input())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"data":    booking,
	})
}

// GET /api/bookings
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService(c).ListBookings()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondList(c, bookings)
}

// GET /api/bookings/user/:email
func (h *Handler) ListBookingsByEmail(c *gin.Context) {
	bookings, err := h.bookingService(c).ListBookingsByEmail(c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondList(c, bookings)
}

// GET /api/booking/:confirmationCode
func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService(c).GetBooking(c.Param("confirmationCode"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, booking)
}

// DELETE /api/booking/:confirmationCode
func (h *Handler) CancelBooking(c *gin.Context) {
	if err := h.bookingService(c).CancelBooking(c.Param("confirmationCode")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled successfully"})
}

// GET /api/booking/:confirmationCode/voucher returns the voucher PDF inline.
func (h *Handler) GetVoucher(c *gin.Context) {
	svc := services.VoucherService{
		Store:     h.Store,
		Now:       h.Now,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateVoucher(c.Param("confirmationCode"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
