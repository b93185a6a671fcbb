package services

import (
	"strings"

	"mrtravel/internal/domain"
	"mrtravel/internal/domain/models"
	"mrtravel/internal/repositories"
	"mrtravel/internal/utils"
)

// HotelQuery is the raw listing query as received from the client.
type HotelQuery struct {
	City      string
	Search    string
	Amenities string
	MinPrice  string
	MaxPrice  string
}

// Filter translates q into a HotelFilter. Blank values disable a predicate.
func (q HotelQuery) Filter() (models.HotelFilter, error) {
	f := models.HotelFilter{
		City:      strings.TrimSpace(q.City),
		Search:    strings.TrimSpace(q.Search),
		Amenities: utils.SplitCSV(q.Amenities),
	}
	bound := func(field, raw string) (*float64, error) {
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		v, err := utils.ParseAmount(raw)
		if err != nil {
			return nil, domain.ValidationError{Field: field, Msg: "must be a number", Err: err}
		}
		return &v, nil
	}
	var err error
	if f.MinPrice, err = bound("minPrice", q.MinPrice); err != nil {
		return models.HotelFilter{}, err
	}
	if f.MaxPrice, err = bound("maxPrice", q.MaxPrice); err != nil {
		return models.HotelFilter{}, err
	}
	return f, nil
}

type CatalogService struct {
	Store *repositories.Store
}

func (s CatalogService) ListHotels(q HotelQuery) ([]models.Hotel, error) {
	f, err := q.Filter()
	if err != nil {
		return nil, err
	}
	var out []models.Hotel
	err = s.Store.View(func(tx *repositories.Tx) error {
		out = tx.ListHotels(f)
		return nil
	})
	return out, err
}

func (s CatalogService) GetHotel(id string) (models.Hotel, error) {
	var out models.Hotel
	err := s.Store.View(func(tx *repositories.Tx) error {
		h, err := tx.FindHotel(strings.TrimSpace(id))
		out = h
		return err
	})
	return out, err
}

func (s CatalogService) Cities() ([]string, error) {
	var out []string
	err := s.Store.View(func(tx *repositories.Tx) error {
		out = tx.Cities()
		return nil
	})
	return out, err
}

func (s CatalogService) TourPackages() ([]models.TourPackage, error) {
	var out []models.TourPackage
	err := s.Store.View(func(tx *repositories.Tx) error {
		out = tx.TourPackages()
		return nil
	})
	return out, err
}

func (s CatalogService) Countries() ([]models.Country, error) {
	var out []models.Country
	err := s.Store.View(func(tx *repositories.Tx) error {
		out = tx.Countries()
		return nil
	})
	return out, err
}
