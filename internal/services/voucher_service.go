package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"mrtravel/internal/domain"
	"mrtravel/internal/domain/models"
	"mrtravel/internal/repositories"
	"mrtravel/internal/utils"
)

// VoucherService renders the printable confirmation for a booking.
type VoucherService struct {
	Store     *repositories.Store
	RequestID string
	Now       func() time.Time
}

type voucherData struct {
	Booking models.Booking
	Hotel   models.Hotel
	Issued  time.Time
}

// GenerateVoucher returns the PDF bytes and a download filename.
func (s VoucherService) GenerateVoucher(code string) ([]byte, string, error) {
	code = strings.TrimSpace(code)
	var data voucherData
	err := s.Store.View(func(tx *repositories.Tx) error {
		b, err := tx.FindBooking(code)
		if err != nil {
			return err
		}
		data.Booking = b
		// The hotel may be gone; the booking still carries its name.
		if h, err := tx.FindHotel(b.HotelID); err == nil {
			data.Hotel = h
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	data.Issued = utils.NowUTC()
	if s.Now != nil {
		data.Issued = s.Now()
	}

	pdf, err := buildVoucherPDF(data)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render voucher", Err: err}
	}
	utils.LogEvent(s.RequestID, "voucher", "generate", "code="+code)
	return pdf, fmt.Sprintf("VOUCHER_%s.pdf", safeFilenamePart(code)), nil
}

func buildVoucherPDF(d voucherData) ([]byte, error) {
	b := d.Booking
	png, err := qrcode.Encode(b.ConfirmationCode, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "MR.travel - HOTEL VOUCHER")
	pdf.Ln(12)

	qrOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", qrOpts, bytes.NewReader(png))
	pdf.ImageOptions("qr", 150, 25, 40, 40, false, qrOpts, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	hotelName := safe(b.HotelName, safe(d.Hotel.Name, "-"))
	lines := []string{
		fmt.Sprintf("Confirmation : %s", b.ConfirmationCode),
		fmt.Sprintf("Booking ID   : #%d", b.ID),
		fmt.Sprintf("Status       : %s", strings.ToUpper(string(b.Status))),
		fmt.Sprintf("Hotel        : %s", hotelName),
		fmt.Sprintf("Address      : %s", safe(d.Hotel.Address, "-")),
		fmt.Sprintf("Guest        : %s", safe(b.GuestDetails.Name, "-")),
		fmt.Sprintf("Email        : %s", safe(b.GuestDetails.Email, "-")),
		fmt.Sprintf("Mobile       : %s", safe(b.GuestDetails.Mobile, "-")),
		fmt.Sprintf("Check-in     : %s", dateOnly(b.BookingDetails.CheckIn)),
		fmt.Sprintf("Check-out    : %s", dateOnly(b.BookingDetails.CheckOut)),
		fmt.Sprintf("Nights       : %d", b.BookingDetails.Nights),
		fmt.Sprintf("Rooms/Adults : %d / %d", b.BookingDetails.Rooms, b.BookingDetails.Adults),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total: "+utils.FormatINR(b.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Booked on %s, voucher issued %s. Present this voucher or the QR code at check-in.",
		utils.FormatDateTime(b.BookingDate), utils.FormatDateTime(d.Issued)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return safe(v, "-")
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
