package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtravel/internal/domain"
	"mrtravel/internal/domain/models"
	"mrtravel/internal/http/middleware"
	"mrtravel/internal/services"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/register
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := h.authService(c).Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data":    user,
	})
}

// POST /api/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token, user, err := h.authService(c).Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    gin.H{"token": token, "user": user},
	})
}

// GET /api/me returns the authenticated user with their bookings.
func (h *Handler) Me(c *gin.Context) {
	rc, ok := middleware.GetRequestContext(c)
	if !ok {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "missing identity"})
		return
	}
	user, err := h.authService(c).CurrentUser(rc)
	if err != nil {
		if domain.IsNotFound(err) {
			err = domain.UnauthorizedError{Msg: "account no longer exists", Err: err}
		}
		RespondDomainError(c, err)
		return
	}
	bookings, err := h.bookingService(c).ListBookingsByEmail(user.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	respondOK(c, http.StatusOK, gin.H{"user": user, "bookings": bookings})
}
