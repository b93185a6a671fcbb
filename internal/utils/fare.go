package utils

// StayTotal returns the price of a stay: pricePerNight for every room and
// night. A positive override replaces the computed amount.
func StayTotal(pricePerNight float64, rooms, nights int, override *float64) float64 {
	if override != nil && *override > 0 {
		return *override
	}
	if rooms <= 0 || nights <= 0 || pricePerNight <= 0 {
		return 0
	}
	return pricePerNight * float64(rooms) * float64(nights)
}
