package repositories

import (
	"strings"

	"mrtravel/internal/domain/models"
)

// MatchHotel reports whether h satisfies every predicate set in f. Text
// comparisons ignore case; an amenity matches when it is a substring of any
// of the hotel's amenities.
func MatchHotel(h models.Hotel, f models.HotelFilter) bool {
	if city := strings.TrimSpace(f.City); city != "" && !strings.EqualFold(h.City, city) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(h.Name), q) &&
			!strings.Contains(strings.ToLower(h.City), q) &&
			!strings.Contains(strings.ToLower(h.Description), q) {
			return false
		}
	}
	for _, want := range f.Amenities {
		if !hasAmenity(h.Amenities, want) {
			return false
		}
	}
	if f.MinPrice != nil && h.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && h.Price > *f.MaxPrice {
		return false
	}
	return true
}

func hasAmenity(amenities []string, want string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	for _, a := range amenities {
		if strings.Contains(strings.ToLower(a), want) {
			return true
		}
	}
	return false
}
