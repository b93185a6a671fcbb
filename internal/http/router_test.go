package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"mrtravel/internal/catalog"
	intconfig "mrtravel/internal/config"
	h "mrtravel/internal/http/handlers"
	"mrtravel/internal/repositories"
	"mrtravel/internal/services"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

type testServer struct {
	engine *gin.Engine
	hd     *h.Handler
}

func newTestServer(t *testing.T, env intconfig.Env) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if env.RateLimitRPS == 0 {
		env.RateLimitRPS = 1000
		env.RateLimitBurst = 1000
	}
	store, err := repositories.NewStore(catalog.Default())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	hd := &h.Handler{
		Store:      store,
		JWTSecret:  []byte("test-secret"),
		JWTTTL:     time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	return testServer{engine: NewRouter(env, hd), hd: hd}
}

func (s testServer) do(t *testing.T, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rdr *bytes.Reader
	if body != "" {
		rdr = bytes.NewReader([]byte(body))
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

const bookBody = `{"hotelId":"1","name":"Asha","email":"asha@example.com","mobile":"9999999999",` +
	`"checkIn":"2024-01-01","checkOut":"2024-01-04","adults":2,"rooms":5}`

func TestHealthAndUnknownRoute(t *testing.T) {
	s := newTestServer(t, intconfig.Env{})

	w, _ := s.do(t, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	w, env := s.do(t, http.MethodGet, "/api/nope", "")
	if w.Code != http.StatusNotFound || env.Success || env.Error != "Route not found" {
		t.Fatalf("unknown route = %d %+v", w.Code, env)
	}
}

func TestRoutesListsRegisteredEndpoints(t *testing.T) {
	s := newTestServer(t, intconfig.Env{})
	w, env := s.do(t, http.MethodGet, "/api/routes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(string(env.Data), "/api/booking/:confirmationCode/voucher") {
		t.Errorf("routes missing voucher endpoint: %s", env.Data)
	}
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t, intconfig.Env{})

	w, env := s.do(t, http.MethodPost, "/api/book", bookBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("book status = %d body=%s", w.Code, w.Body.String())
	}
	booking := decode[struct {
		ConfirmationCode string  `json:"confirmationCode"`
		Status           string  `json:"status"`
		TotalPrice       float64 `json:"totalPrice"`
		HotelName        string  `json:"hotelName"`
	}](t, env.Data)
	if booking.Status != "confirmed" || !strings.HasPrefix(booking.ConfirmationCode, "MRT") {
		t.Fatalf("unexpected booking %+v", booking)
	}
	if booking.TotalPrice != 12000*5*3 {
		t.Errorf("totalPrice = %v", booking.TotalPrice)
	}
	if booking.HotelName != "Hotel Amber Palace" {
		t.Errorf("hotelName = %q", booking.HotelName)
	}

	_, env = s.do(t, http.MethodGet, "/api/hotel/1", "")
	if got := decode[struct{ RoomsLeft int }](t, env.Data).RoomsLeft; got != 45 {
		t.Errorf("roomsLeft after booking = %d, want 45", got)
	}

	code := booking.ConfirmationCode
	if w, _ := s.do(t, http.MethodGet, "/api/booking/"+code, ""); w.Code != http.StatusOK {
		t.Errorf("get booking status = %d", w.Code)
	}
	_, env = s.do(t, http.MethodGet, "/api/bookings/user/asha@example.com", "")
	if env.Count != 1 {
		t.Errorf("bookings by email count = %d", env.Count)
	}
	_, env = s.do(t, http.MethodGet, "/api/bookings/user/ASHA@example.com", "")
	if env.Count != 0 || string(env.Data) != "[]" {
		t.Errorf("case-different email = %d %s, want empty list", env.Count, env.Data)
	}

	w, env = s.do(t, http.MethodDelete, "/api/booking/"+code, "")
	if w.Code != http.StatusOK || env.Message != "Booking cancelled successfully" {
		t.Fatalf("cancel = %d %+v", w.Code, env)
	}
	_, env = s.do(t, http.MethodGet, "/api/hotel/1", "")
	if got := decode[struct{ RoomsLeft int }](t, env.Data).RoomsLeft; got != 50 {
		t.Errorf("roomsLeft after cancel = %d, want 50", got)
	}
	if w, _ := s.do(t, http.MethodGet, "/api/booking/"+code, ""); w.Code != http.StatusNotFound {
		t.Errorf("get cancelled booking status = %d, want 404", w.Code)
	}
	if w, _ := s.do(t, http.MethodDelete, "/api/booking/"+code, ""); w.Code != http.StatusNotFound {
		t.Errorf("second cancel status = %d, want 404", w.Code)
	}
}

func TestCreateBookingErrors(t *testing.T) {
	s := newTestServer(t, intconfig.Env{})

	tests := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"missing fields", `{"hotelId":"1","name":"Asha"}`, http.StatusBadRequest, "Missing required fields"},
		{"bad email", strings.Replace(bookBody, "asha@example.com", "asha", 1), http.StatusBadRequest, "Invalid email format"},
		{"unknown hotel", strings.Replace(bookBody, `"hotelId":"1"`, `"hotelId":"999"`, 1), http.StatusNotFound, "Hotel not found"},
		{"too many rooms", strings.Replace(bookBody, `"rooms":5`, `"rooms":51`, 1), http.StatusBadRequest, "Only 50 rooms available"},
		{"malformed json", `{"hotelId":`, http.StatusBadRequest, "Invalid request payload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := s.do(t, http.MethodPost, "/api/book", tt.body)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
			if env.Success || env.Error != tt.msg {
				t.Errorf("error = %q, want %q", env.Error, tt.msg)
			}
		})
	}

	_, env := s.do(t, http.MethodGet, "/api/bookings", "")
	if env.Count != 0 {
		t.Errorf("ledger has %d bookings after failed creates", env.Count)
	}
}

func TestHotelListingFilters(t *testing.T) {
	s := newTestServer(t, intconfig.Env{})

	_, env := s.do(t, http.MethodGet, "/api/hotels?amenities=gym&maxPrice=8000", "")
	if env.Count != 2 {
		t.Errorf("filtered count = %d, want 2 (%s)", env.Count, env.Data)
	}
	w, env := s.do(t, http.MethodGet, "/api/hotels?minPrice=abc", "")
	if w.Code != http.StatusBadRequest || env.Code != "validation_error" {
		t.Errorf("bad minPrice = %d %+v", w.Code, env)
	}
	if w, _ := s.do(t, http.MethodGet, "/api/hotel/404", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown hotel status = %d", w.Code)
	}
	_, env = s.do(t, http.MethodGet, "/api/cities", "")
	if string(env.Data) != `["Jaipur"]` {
		t.Errorf("cities = %s", env.Data)
	}
	for _, p := range []string{"/api/tour-packages", "/api/countries"} {
		if _, env := s.do(t, http.MethodGet, p, ""); env.Count != 4 {
			t.Errorf("%s count = %d, want 4", p, env.Count)
		}
	}
}

func TestAuthFlowAndAdminGate(t *testing.T) {
	s := newTestServer(t, intconfig.Env{})

	w, env := s.do(t, http.MethodPost, "/api/register", `{"name":"Asha","email":"asha@example.com","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d %s", w.Code, w.Body.String())
	}
	if strings.Contains(string(env.Data), "password") {
		t.Errorf("register response leaks password: %s", env.Data)
	}
	if w, _ := s.do(t, http.MethodPost, "/api/register", `{"name":"A","email":"asha@example.com","password":"secret1"}`); w.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", w.Code)
	}
	longPassword := `{"name":"B","email":"b@example.com","password":"` + strings.Repeat("p", 80) + `"}`
	if w, env := s.do(t, http.MethodPost, "/api/register", longPassword); w.Code != http.StatusBadRequest || env.Code != "validation_error" {
		t.Errorf("over-long password = %d %+v, want 400 validation_error", w.Code, env)
	}
	if w, _ := s.do(t, http.MethodPost, "/api/login", `{"email":"asha@example.com","password":"wrong"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", w.Code)
	}

	_, env = s.do(t, http.MethodPost, "/api/login", `{"email":"asha@example.com","password":"secret1"}`)
	token := decode[struct{ Token string }](t, env.Data).Token
	if token == "" {
		t.Fatal("login returned no token")
	}
	bearer := []string{"Authorization", "Bearer " + token}

	s.do(t, http.MethodPost, "/api/book", bookBody)
	w, env = s.do(t, http.MethodGet, "/api/me", "", bearer...)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d %s", w.Code, w.Body.String())
	}
	me := decode[struct {
		User     struct{ Email string }
		Bookings []json.RawMessage
	}](t, env.Data)
	if me.User.Email != "asha@example.com" || len(me.Bookings) != 1 {
		t.Errorf("me = %+v", me)
	}

	if w, _ := s.do(t, http.MethodGet, "/api/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("me without token = %d, want 401", w.Code)
	}
	if w, _ := s.do(t, http.MethodGet, "/api/admin/bookings", "", bearer...); w.Code != http.StatusForbidden {
		t.Errorf("admin as user = %d, want 403", w.Code)
	}

	auth := services.AuthService{Store: s.hd.Store, Secret: s.hd.JWTSecret, TTL: s.hd.JWTTTL, Cost: bcrypt.MinCost}
	if err := auth.EnsureAdmin("admin@example.com", "admin-pass"); err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}
	adminToken, _, err := auth.Login("admin@example.com", "admin-pass")
	if err != nil {
		t.Fatalf("admin login error: %v", err)
	}
	w, env = s.do(t, http.MethodGet, "/api/admin/bookings", "", "Authorization", "Bearer "+adminToken)
	if w.Code != http.StatusOK || env.Count != 1 {
		t.Errorf("admin bookings = %d count=%d", w.Code, env.Count)
	}
}

func TestVoucherDownload(t *testing.T) {
	s := newTestServer(t, intconfig.Env{})
	_, env := s.do(t, http.MethodPost, "/api/book", bookBody)
	code := decode[struct{ ConfirmationCode string }](t, env.Data).ConfirmationCode

	w, _ := s.do(t, http.MethodGet, "/api/booking/"+code+"/voucher", "")
	if w.Code != http.StatusOK {
		t.Fatalf("voucher status = %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "VOUCHER_"+code+".pdf") {
		t.Errorf("content disposition = %q", w.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}

	if w, _ := s.do(t, http.MethodGet, "/api/booking/MRTNOPE/voucher", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown voucher status = %d", w.Code)
	}
}

func TestWriteEndpointsAreRateLimited(t *testing.T) {
	s := newTestServer(t, intconfig.Env{RateLimitRPS: 0.001, RateLimitBurst: 1})

	if w, _ := s.do(t, http.MethodPost, "/api/login", `{"email":"x@example.com","password":"nope"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("first login = %d, want 401", w.Code)
	}
	w, env := s.do(t, http.MethodPost, "/api/login", `{"email":"x@example.com","password":"nope"}`)
	if w.Code != http.StatusTooManyRequests || env.Code != "rate_limited" {
		t.Errorf("second login = %d %+v, want 429", w.Code, env)
	}
	if w, _ := s.do(t, http.MethodGet, "/api/hotels", ""); w.Code != http.StatusOK {
		t.Errorf("reads must not be limited, got %d", w.Code)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	s := newTestServer(t, intconfig.Env{})
	s.engine.GET("/api/boom", func(c *gin.Context) { panic("boom") })

	w, env := s.do(t, http.MethodGet, "/api/boom", "")
	if w.Code != http.StatusInternalServerError || env.Error != "Something went wrong!" {
		t.Errorf("panic = %d %+v", w.Code, env)
	}
}
