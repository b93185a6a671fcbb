// Package catalog holds the built-in hotel, tour and destination data the
// API serves when no catalog database is configured.
package catalog

import (
	"mrtravel/internal/domain/models"
	"mrtravel/internal/repositories"
)

// Default returns a fresh copy of the built-in catalog.
func Default() repositories.Seed {
	return repositories.Seed{
		Hotels:    Hotels(),
		Tours:     TourPackages(),
		Countries: Countries(),
	}
}

const tourIncludes = "Included: Air ticket, Hotel, Breakfast, Tours, Airport transfers"

func Hotels() []models.Hotel {
	return []models.Hotel{
		{
			ID:              "1",
			Name:            "Hotel Amber Palace",
			City:            "Jaipur",
			Location:        "Amber Road, Jaipur",
			Rating:          4.80,
			Reviews:         2456,
			Description:     "Luxury hotel near Amber Fort",
			LongDescription: "Experience royal luxury in the heart of Jaipur. Our heritage property combines traditional Rajasthani architecture with modern amenities. Located near the iconic Amber Fort, enjoy stunning views and world-class hospitality.",
			Amenities:       []string{"Swimming Pool", "Gym", "Spa", "Breakfast", "Buffet", "Indian Cuisine", "Wi-Fi", "Room Service", "Parking"},
			Address:         "Amber Road, Jaipur, Rajasthan 302001",
			RoomsLeft:       50,
			Price:           12000,
			OriginalPrice:   14000,
			Discount:        15,
			CoupleFriendly:  true,
			Image:           "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800",
			Images: []string{
				"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800",
				"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
				"https://images.unsplash.com/photo-1582719508461-905c673771fd?w=800",
			},
			MapURL:      "https://maps.google.com/maps?q=Amber+Fort+Jaipur&t=&z=13&ie=UTF8&iwloc=&output=embed",
			Coordinates: models.Coordinates{Lat: 26.9855, Lng: 75.8513},
		},
		{
			ID:              "2",
			Name:            "Rajputana Palace",
			City:            "Jaipur",
			Location:        "M.I. Road, Jaipur",
			Rating:          4.50,
			Reviews:         1890,
			Description:     "Heritage hotel with royal decor",
			LongDescription: "A magnificent blend of heritage and comfort. Stay in a palace that once hosted royalty and nobility. Experience authentic Rajasthani hospitality with modern luxury.",
			Amenities:       []string{"Bar", "Conference Hall", "Swimming Pool", "Spa", "Wi-Fi", "Parking", "Room Service"},
			Address:         "M.I. Road, Jaipur, Rajasthan 302006",
			RoomsLeft:       80,
			Price:           8000,
			OriginalPrice:   10000,
			Discount:        10,
			CoupleFriendly:  true,
			Image:           "https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800",
			Images: []string{
				"https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800",
				"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800",
			},
			MapURL:      "https://maps.google.com/maps?q=MI+Road+Jaipur&t=&z=13&ie=UTF8&iwloc=&output=embed",
			Coordinates: models.Coordinates{Lat: 26.9124, Lng: 75.7873},
		},
		{
			ID:              "3",
			Name:            "Pink City Hotel",
			City:            "Jaipur",
			Location:        "Bapu Bazaar, Jaipur",
			Rating:          4.20,
			Reviews:         1234,
			Description:     "Affordable stay with modern amenities",
			LongDescription: "Modern comfort in the heart of the Pink City. Perfect for both business and leisure travelers. Close to major attractions and shopping areas.",
			Amenities:       []string{"Wi-Fi", "Parking", "Elevator", "Swimming Pool", "Gym"},
			Address:         "Bapu Bazaar, Jaipur, Rajasthan 302001",
			RoomsLeft:       120,
			Price:           4000,
			OriginalPrice:   5000,
			Discount:        20,
			CoupleFriendly:  true,
			Image:           "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800",
			Images:          []string{"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800"},
			MapURL:          "https://maps.google.com/maps?q=Bapu+Bazaar+Jaipur&t=&z=13&ie=UTF8&iwloc=&output=embed",
			Coordinates:     models.Coordinates{Lat: 26.9195, Lng: 75.7951},
		},
		{
			ID:              "4",
			Name:            "Trident Jaipur",
			City:            "Jaipur",
			Location:        "Amber Fort Road, Jaipur",
			Rating:          4.70,
			Reviews:         3421,
			Description:     "Sophisticated hotel with luxury services",
			LongDescription: "Five-star luxury with world-class amenities. Experience unparalleled hospitality and service in the royal city of Jaipur.",
			Amenities:       []string{"Free Wi-Fi", "Outdoor Pool", "Spa", "Gym", "Room Service", "Conference Hall"},
			Address:         "Amber Fort Road, Jaipur, Rajasthan 302002",
			RoomsLeft:       60,
			Price:           15000,
			OriginalPrice:   17000,
			Discount:        12,
			CoupleFriendly:  true,
			Image:           "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
			Images:          []string{"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800"},
			MapURL:          "https://maps.google.com/maps?q=Amber+Fort+Road+Jaipur&t=&z=13&ie=UTF8&iwloc=&output=embed",
			Coordinates:     models.Coordinates{Lat: 26.9855, Lng: 75.8613},
		},
		{
			ID:              "5",
			Name:            "Holiday Inn Jaipur",
			City:            "Jaipur",
			Location:        "Raja Park, Jaipur",
			Rating:          4.40,
			Reviews:         2100,
			Description:     "Comfortable hotel with easy access to major attractions",
			LongDescription: "Contemporary comfort with excellent connectivity. Ideal for business travelers and tourists alike.",
			Amenities:       []string{"Free Parking", "Room Service", "Swimming Pool", "Gym"},
			Address:         "Raja Park, Jaipur, Rajasthan 302004",
			RoomsLeft:       70,
			Price:           7500,
			OriginalPrice:   9000,
			Discount:        14,
			CoupleFriendly:  true,
			Image:           "https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=800",
			Images:          []string{"https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=800"},
			MapURL:          "https://maps.google.com/maps?q=Raja+Park+Jaipur&t=&z=13&ie=UTF8&iwloc=&output=embed",
			Coordinates:     models.Coordinates{Lat: 26.9011, Lng: 75.7876},
		},
	}
}

func TourPackages() []models.TourPackage {
	return []models.TourPackage{
		{ID: "t1", Name: "Lotus-Delhi", Location: "Delhi", Description: tourIncludes, Likes: 24512, Views: 8536, Price: 2870, Duration: "3 Days", Image: "https://images.unsplash.com/photo-1587474260584-136574528ed5?w=400"},
		{ID: "t2", Name: "Burj Khalifa-DXB", Location: "Dubai", Description: tourIncludes, Likes: 24572, Views: 9371, Price: 2350, Duration: "4 Days", Image: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=400"},
		{ID: "t3", Name: "Piramids-Egypt", Location: "Egypt", Description: tourIncludes, Likes: 40165, Views: 2209, Price: 1130, Duration: "5 Days", Image: "https://images.unsplash.com/photo-1572252009286-268acec5ca0a?w=400"},
		{ID: "t4", Name: "Mountain-Vietnam", Location: "Vietnam", Description: tourIncludes, Likes: 24513, Views: 4538, Price: 2870, Duration: "6 Days", Image: "https://images.unsplash.com/photo-1583417319070-4a69db38a482?w=400"},
	}
}

func Countries() []models.Country {
	return []models.Country{
		{ID: "c1", Country: "INDIA", City: "Mumbai Central", Price: 460, Flag: "🇮🇳", Image: "https://images.unsplash.com/photo-1529253355930-ddbe423a2ac7?w=400"},
		{ID: "c2", Country: "UNITED STATE", City: "New York", Price: 870, Flag: "🇺🇸", Image: "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=400"},
		{ID: "c3", Country: "RUSSIA", City: "Sanpitersburg", Price: 660, Flag: "🇷🇺", Image: "https://images.unsplash.com/photo-1547448415-e9f5b28e570d?w=400"},
		{ID: "c4", Country: "SPAIN", City: "Barcelona", Price: 730, Flag: "🇪🇸", Image: "https://images.unsplash.com/photo-1583422409516-2895a77efded?w=400"},
	}
}
