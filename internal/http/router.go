package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "mrtravel/internal/config"
	"mrtravel/internal/domain"
	h "mrtravel/internal/http/handlers"
	"mrtravel/internal/http/middleware"
	"mrtravel/internal/utils"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.CustomRecovery(h.Recovered),
		middleware.CORS(env.CORSAllowedOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().WithError(err).Warn("failed to set trusted proxies")
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })
	r.NoRoute(h.NotFound)

	limiter := middleware.NewRateLimiter(env.RateLimitRPS, env.RateLimitBurst)
	requireAuth := middleware.RequireAuth(hd.ParseToken)

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/routes", hd.Routes)

		// Catalog
		api.GET("/hotels", hd.ListHotels)
		api.GET("/hotel/:id", hd.GetHotel)
		api.GET("/cities", hd.ListCities)
		api.GET("/tour-packages", hd.ListTourPackages)
		api.GET("/countries", hd.ListCountries)

		// Auth
		api.POST("/register", limiter.Limit(), hd.Register)
		api.POST("/login", limiter.Limit(), hd.Login)
		api.GET("/me", requireAuth, hd.Me)

		// Bookings
		api.POST("/book", limiter.Limit(), hd.CreateBooking)
		api.GET("/bookings", hd.ListBookings)
		api.GET("/bookings/user/:email", hd.ListBookingsByEmail)

		booking := api.Group("/booking/:confirmationCode")
		booking.GET("", hd.GetBooking)
		booking.DELETE("", hd.CancelBooking)
		booking.GET("/voucher", hd.GetVoucher)

		// Admin
		admin := api.Group("/admin", requireAuth, middleware.RequireRoles(domain.RoleAdmin))
		admin.GET("/bookings", hd.ListBookings)
	}

	hd.SetRouter(r)
	return r
}
