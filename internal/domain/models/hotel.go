package models

// Coordinates is a hotel's map position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Hotel is a catalog entry. RoomsLeft is the only mutable field and is
// changed exclusively through booking create/cancel.
type Hotel struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	City            string      `json:"city"`
	Location        string      `json:"location"`
	Rating          float64     `json:"rating"`
	Reviews         int         `json:"reviews"`
	Description     string      `json:"description"`
	LongDescription string      `json:"longDescription"`
	Amenities       []string    `json:"amenities"`
	Address         string      `json:"address"`
	RoomsLeft       int         `json:"roomsLeft"`
	Price           float64     `json:"price"`
	OriginalPrice   float64     `json:"originalPrice"`
	Discount        int         `json:"discount"`
	CoupleFriendly  bool        `json:"coupleFriendly"`
	Image           string      `json:"image"`
	Images          []string    `json:"images"`
	MapURL          string      `json:"mapUrl"`
	Coordinates     Coordinates `json:"coordinates"`
}

// Clone returns a copy that shares no slices with h.
func (h Hotel) Clone() Hotel {
	out := h
	out.Amenities = append([]string(nil), h.Amenities...)
	out.Images = append([]string(nil), h.Images...)
	return out
}

// HotelFilter holds the optional listing predicates. Zero values disable a
// predicate; price bounds are pointers so that 0 is a usable bound.
type HotelFilter struct {
	City      string
	Search    string
	Amenities []string
	MinPrice  *float64
	MaxPrice  *float64
}

// TourPackage is a read-only promotional package.
type TourPackage struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Likes       int     `json:"likes"`
	Views       int     `json:"views"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Image       string  `json:"image"`
}

// Country is a read-only travel destination teaser.
type Country struct {
	ID      string  `json:"id"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	Price   float64 `json:"price"`
	Flag    string  `json:"flag"`
	Image   string  `json:"image"`
}
