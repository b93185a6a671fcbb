package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtravel/internal/services"
)

// GET /api/hotels?city=&search=&amenities=a,b&minPrice=&maxPrice=
func (h *Handler) ListHotels(c *gin.Context) {
	svc := services.CatalogService{Store: h.Store}
	hotels, err := svc.ListHotels(services.HotelQuery{
		City:      c.Query("city"),
		Search:    c.Query("search"),
		Amenities: c.Query("amenities"),
		MinPrice:  c.Query("minPrice"),
		MaxPrice:  c.Query("maxPrice"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondList(c, hotels)
}

// GET /api/hotel/:id
func (h *Handler) GetHotel(c *gin.Context) {
	hotel, err := services.CatalogService{Store: h.Store}.GetHotel(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, hotel)
}

func (h *Handler) ListCities(c *gin.Context) {
	cities, err := services.CatalogService{Store: h.Store}.Cities()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondList(c, cities)
}

func (h *Handler) ListTourPackages(c *gin.Context) {
	tours, err := services.CatalogService{Store: h.Store}.TourPackages()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondList(c, tours)
}

func (h *Handler) ListCountries(c *gin.Context) {
	countries, err := services.CatalogService{Store: h.Store}.Countries()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondList(c, countries)
}
