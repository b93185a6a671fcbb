package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mrtravel/internal/domain"
	"mrtravel/internal/http/middleware"
	"mrtravel/internal/repositories"
	"mrtravel/internal/services"
)

// Handler carries the shared state the route handlers build services from.
type Handler struct {
	Store      *repositories.Store
	JWTSecret  []byte
	JWTTTL     time.Duration
	BcryptCost int
	Now        func() time.Time

	router *gin.Engine
}

// SetRouter stores the active gin engine for /api/routes.
func (h *Handler) SetRouter(r *gin.Engine) { h.router = r }

func (h *Handler) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Store:     h.Store,
		Secret:    h.JWTSecret,
		TTL:       h.JWTTTL,
		Cost:      h.BcryptCost,
		Now:       h.Now,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{Store: h.Store, Now: h.Now, RequestID: middleware.GetRequestID(c)}
}

// ParseToken adapts the auth service for middleware.RequireAuth.
func (h *Handler) ParseToken(token string) (domain.RequestContext, error) {
	return services.AuthService{Store: h.Store, Secret: h.JWTSecret, Now: h.Now}.ParseToken(token)
}

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondList[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "data": items})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Request body is required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			respondError(c, http.StatusBadRequest, "validation_error", "Request body is required")
			return false
		}
		respondError(c, http.StatusBadRequest, "validation_error", "Invalid request payload")
		return false
	}
	return true
}
