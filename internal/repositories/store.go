package repositories

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"mrtravel/internal/domain"
	"mrtravel/internal/domain/models"
)

// ConfirmationPrefix starts every booking confirmation code.
const ConfirmationPrefix = "MRT"

var ErrReadOnly = errors.New("write attempted in read-only transaction")

// Seed is the initial catalog a Store is built from.
type Seed struct {
	Hotels    []models.Hotel
	Tours     []models.TourPackage
	Countries []models.Country
}

// Store owns all mutable state of the process: hotel inventory, the booking
// ledger and registered users. Access goes through Update and View so that
// readers never observe an inventory change without its ledger entry.
type Store struct {
	mu sync.RWMutex

	hotels    []*models.Hotel
	hotelByID map[string]*models.Hotel
	tours     []models.TourPackage
	countries []models.Country

	bookings []models.Booking
	issued   map[string]struct{}
	users    []models.User

	bookingIDs *Sequence
	userIDs    *Sequence
	codes      *CodeGenerator
}

type Option func(*Store)

// WithClock sets the clock confirmation codes are derived from.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.codes = NewCodeGenerator(ConfirmationPrefix, now) }
}

// WithCodeGenerator replaces the confirmation code generator.
func WithCodeGenerator(g *CodeGenerator) Option {
	return func(s *Store) { s.codes = g }
}

// WithBookingIDs replaces the booking ID sequence.
func WithBookingIDs(seq *Sequence) Option {
	return func(s *Store) { s.bookingIDs = seq }
}

func NewStore(seed Seed, opts ...Option) (*Store, error) {
	s := &Store{
		hotelByID:  make(map[string]*models.Hotel, len(seed.Hotels)),
		tours:      append([]models.TourPackage(nil), seed.Tours...),
		countries:  append([]models.Country(nil), seed.Countries...),
		issued:     map[string]struct{}{},
		bookingIDs: NewSequence(1),
		userIDs:    NewSequence(1),
		codes:      NewCodeGenerator(ConfirmationPrefix, time.Now),
	}
	for _, h := range seed.Hotels {
		id := strings.TrimSpace(h.ID)
		if id == "" {
			return nil, fmt.Errorf("hotel %q: empty id", h.Name)
		}
		if _, dup := s.hotelByID[id]; dup {
			return nil, fmt.Errorf("hotel %s: duplicate id", id)
		}
		if h.RoomsLeft < 0 {
			return nil, fmt.Errorf("hotel %s: negative roomsLeft %d", id, h.RoomsLeft)
		}
		hc := h.Clone()
		hc.ID = id
		s.hotels = append(s.hotels, &hc)
		s.hotelByID[id] = &hc
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Update runs fn with exclusive access. When fn returns an error every
// mutation it made is undone before the lock is released.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{s: s, writable: true}
	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// View runs fn with shared access; writes inside fn fail with ErrReadOnly.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(&Tx{s: s})
}

// Tx is a handle valid only for the duration of an Update or View callback.
type Tx struct {
	s        *Store
	writable bool
	undo     []func()
}

func (tx *Tx) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

func (tx *Tx) FindHotel(id string) (models.Hotel, error) {
	h, ok := tx.s.hotelByID[id]
	if !ok {
		return models.Hotel{}, domain.NotFoundError{Resource: "Hotel"}
	}
	return h.Clone(), nil
}

// AdjustRoomsLeft applies delta to the hotel's inventory and refuses any
// change that would leave it negative.
func (tx *Tx) AdjustRoomsLeft(id string, delta int) error {
	if !tx.writable {
		return ErrReadOnly
	}
	h, ok := tx.s.hotelByID[id]
	if !ok {
		return domain.NotFoundError{Resource: "Hotel"}
	}
	if h.RoomsLeft+delta < 0 {
		return domain.InsufficientInventoryError{HotelID: id, Requested: -delta, Available: h.RoomsLeft}
	}
	h.RoomsLeft += delta
	tx.undo = append(tx.undo, func() { h.RoomsLeft -= delta })
	return nil
}

func (tx *Tx) ListHotels(f models.HotelFilter) []models.Hotel {
	out := make([]models.Hotel, 0, len(tx.s.hotels))
	for _, h := range tx.s.hotels {
		if MatchHotel(*h, f) {
			out = append(out, h.Clone())
		}
	}
	return out
}

// Cities lists distinct hotel cities in catalog order.
func (tx *Tx) Cities() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, h := range tx.s.hotels {
		if _, ok := seen[h.City]; ok {
			continue
		}
		seen[h.City] = struct{}{}
		out = append(out, h.City)
	}
	return out
}

func (tx *Tx) TourPackages() []models.TourPackage {
	return append([]models.TourPackage{}, tx.s.tours...)
}

func (tx *Tx) Countries() []models.Country {
	return append([]models.Country{}, tx.s.countries...)
}

// InsertBooking assigns the next ID and a fresh confirmation code to b and
// appends it to the ledger.
func (tx *Tx) InsertBooking(b models.Booking) (models.Booking, error) {
	if !tx.writable {
		return models.Booking{}, ErrReadOnly
	}
	code := tx.s.codes.Next()
	for {
		if _, taken := tx.s.issued[code]; !taken {
			break
		}
		code = tx.s.codes.Next()
	}
	b.ID = tx.s.bookingIDs.Next()
	b.ConfirmationCode = code

	tx.s.issued[code] = struct{}{}
	tx.s.bookings = append(tx.s.bookings, b)
	tx.undo = append(tx.undo, func() {
		tx.s.bookings = tx.s.bookings[:len(tx.s.bookings)-1]
		delete(tx.s.issued, code)
	})
	return b, nil
}

func (tx *Tx) FindBooking(code string) (models.Booking, error) {
	if i := tx.bookingIndex(code); i >= 0 {
		return tx.s.bookings[i], nil
	}
	return models.Booking{}, domain.NotFoundError{Resource: "Booking"}
}

// DeleteBooking removes the booking from the ledger and returns it. The code
// stays reserved so it is never issued again.
func (tx *Tx) DeleteBooking(code string) (models.Booking, error) {
	if !tx.writable {
		return models.Booking{}, ErrReadOnly
	}
	i := tx.bookingIndex(code)
	if i < 0 {
		return models.Booking{}, domain.NotFoundError{Resource: "Booking"}
	}
	removed := tx.s.bookings[i]
	tx.s.bookings = append(tx.s.bookings[:i:i], tx.s.bookings[i+1:]...)
	tx.undo = append(tx.undo, func() {
		rest := append([]models.Booking{removed}, tx.s.bookings[i:]...)
		tx.s.bookings = append(tx.s.bookings[:i:i], rest...)
	})
	return removed, nil
}

func (tx *Tx) ListBookings() []models.Booking {
	return append([]models.Booking{}, tx.s.bookings...)
}

// ListBookingsByEmail matches the guest email exactly, case included.
func (tx *Tx) ListBookingsByEmail(email string) []models.Booking {
	out := []models.Booking{}
	for _, b := range tx.s.bookings {
		if b.GuestDetails.Email == email {
			out = append(out, b)
		}
	}
	return out
}

func (tx *Tx) bookingIndex(code string) int {
	for i := range tx.s.bookings {
		if tx.s.bookings[i].ConfirmationCode == code {
			return i
		}
	}
	return -1
}

func (tx *Tx) FindUserByEmail(email string) (models.User, error) {
	for _, u := range tx.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "User"}
}

func (tx *Tx) FindUserByID(id domain.ID) (models.User, error) {
	for _, u := range tx.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "User"}
}

// InsertUser stores u under the next user ID; emails are unique.
func (tx *Tx) InsertUser(u models.User) (models.User, error) {
	if !tx.writable {
		return models.User{}, ErrReadOnly
	}
	if _, err := tx.FindUserByEmail(u.Email); err == nil {
		return models.User{}, domain.ConflictError{Msg: "User already exists"}
	}
	u.ID = domain.ID(tx.s.userIDs.Next())
	tx.s.users = append(tx.s.users, u)
	tx.undo = append(tx.undo, func() { tx.s.users = tx.s.users[:len(tx.s.users)-1] })
	return u, nil
}
