package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var hotelRowColumns = []string{
	"id", "name", "city", "location", "rating", "reviews", "description", "long_description",
	"amenities", "address", "rooms_left", "price", "original_price", "discount",
	"couple_friendly", "image", "images", "map_url", "lat", "lng",
}

func expectHotelSchema(mock sqlmock.Sqlmock, cols ...string) {
	mock.ExpectQuery("information_schema\\.tables").WithArgs("hotels").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("hotels"))
	rows := sqlmock.NewRows([]string{"column_name"})
	for _, c := range cols {
		rows.AddRow(c)
	}
	mock.ExpectQuery("information_schema\\.columns").WithArgs("hotels").WillReturnRows(rows)
}

func TestHotelSQLRepoLoadHotels(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectHotelSchema(mock, "id", "name", "city", "price", "rooms_left", "amenities", "couple_friendly", "LAT")
	mock.ExpectQuery("FROM hotels").WillReturnRows(sqlmock.NewRows(hotelRowColumns).
		AddRow(" 9 ", "Lake View", "Udaipur", "", 0.0, int64(0), "", "",
			"Wi-Fi, Pool ,", "", int64(12), 3500.0, 0.0, int64(0),
			int64(1), "", "", "", 24.57, 0.0))

	hotels, err := HotelSQLRepo{DB: db}.LoadHotels(context.Background())
	if err != nil {
		t.Fatalf("LoadHotels error: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("got %d hotels, want 1", len(hotels))
	}
	h := hotels[0]
	if h.ID != "9" || h.RoomsLeft != 12 || h.Price != 3500 {
		t.Fatalf("unexpected hotel: %+v", h)
	}
	if len(h.Amenities) != 2 || h.Amenities[1] != "Pool" {
		t.Fatalf("amenities not split: %#v", h.Amenities)
	}
	if !h.CoupleFriendly || h.Coordinates.Lat != 24.57 {
		t.Fatalf("optional columns not mapped: %+v", h)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHotelSQLRepoMissingRequiredColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectHotelSchema(mock, "id", "name", "city", "price")

	_, err = HotelSQLRepo{DB: db}.LoadHotels(context.Background())
	if err == nil || !strings.Contains(err.Error(), "rooms_left") {
		t.Fatalf("expected missing rooms_left error, got %v", err)
	}
}

func TestHotelSQLRepoMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("hotels").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	if _, err := (HotelSQLRepo{DB: db}).LoadHotels(context.Background()); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestHotelSQLRepoToleratesNullNameAndCity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectHotelSchema(mock, "id", "name", "city", "price", "rooms_left")
	mock.ExpectQuery(`COALESCE\(name, ''\), COALESCE\(city, ''\)`).WillReturnRows(sqlmock.NewRows(hotelRowColumns).
		AddRow("7", "", "", "", 0.0, int64(0), "", "",
			"", "", int64(3), 900.0, 0.0, int64(0),
			int64(0), "", "", "", 0.0, 0.0))

	hotels, err := HotelSQLRepo{DB: db}.LoadHotels(context.Background())
	if err != nil {
		t.Fatalf("LoadHotels error: %v", err)
	}
	if len(hotels) != 1 || hotels[0].ID != "7" || hotels[0].RoomsLeft != 3 {
		t.Fatalf("unexpected hotels: %+v", hotels)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
