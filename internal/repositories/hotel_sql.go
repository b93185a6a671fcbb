package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intdb "mrtravel/internal/db"
	"mrtravel/internal/domain/models"
)

const hotelsTable = "hotels"

var requiredHotelColumns = []string{"id", "name", "city", "price", "rooms_left"}

// HotelSQLRepo reads the hotel catalog from MySQL. It is only used to seed
// the in-memory Store at startup; bookings never reach the database.
type HotelSQLRepo struct {
	DB *sql.DB
}

// LoadHotels reads every row of the hotels table. Optional columns that the
// table lacks fall back to zero values.
func (r HotelSQLRepo) LoadHotels(ctx context.Context) ([]models.Hotel, error) {
	if r.DB == nil {
		return nil, fmt.Errorf("catalog db not configured")
	}
	if !intdb.HasTable(ctx, r.DB, hotelsTable) {
		return nil, fmt.Errorf("table %s not found", hotelsTable)
	}
	cols, err := intdb.Columns(ctx, r.DB, hotelsTable)
	if err != nil {
		return nil, fmt.Errorf("read %s columns: %w", hotelsTable, err)
	}
	for _, c := range requiredHotelColumns {
		if !cols[c] {
			return nil, fmt.Errorf("table %s: missing column %s", hotelsTable, c)
		}
	}

	sel := func(col string) string {
		if cols[col] {
			return "COALESCE(" + col + ", '')"
		}
		return "''"
	}
	numSel := func(col string) string {
		if cols[col] {
			return "COALESCE(" + col + ", 0)"
		}
		return "0"
	}

	query := fmt.Sprintf(`
		SELECT
			id, %s, %s, %s,
			%s, %s,
			%s, %s,
			%s, %s,
			rooms_left, price, %s, %s,
			%s,
			%s, %s, %s,
			%s, %s
		FROM %s
		ORDER BY id
	`,
		sel("name"),
		sel("city"),
		sel("location"),
		numSel("rating"),
		numSel("reviews"),
		sel("description"),
		sel("long_description"),
		sel("amenities"),
		sel("address"),
		numSel("original_price"),
		numSel("discount"),
		numSel("couple_friendly"),
		sel("image"),
		sel("images"),
		sel("map_url"),
		numSel("lat"),
		numSel("lng"),
		hotelsTable,
	)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query hotels: %w", err)
	}
	defer rows.Close()

	var out []models.Hotel
	for rows.Next() {
		var (
			h                 models.Hotel
			amenities, images string
			coupleFriendly    int
		)
		if err := rows.Scan(
			&h.ID, &h.Name, &h.City, &h.Location,
			&h.Rating, &h.Reviews,
			&h.Description, &h.LongDescription,
			&amenities, &h.Address,
			&h.RoomsLeft, &h.Price, &h.OriginalPrice, &h.Discount,
			&coupleFriendly,
			&h.Image, &images, &h.MapURL,
			&h.Coordinates.Lat, &h.Coordinates.Lng,
		); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		h.ID = strings.TrimSpace(h.ID)
		h.Amenities = intdb.SplitList(amenities)
		h.Images = intdb.SplitList(images)
		h.CoupleFriendly = coupleFriendly != 0
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotels: %w", err)
	}
	return out, nil
}
