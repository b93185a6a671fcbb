package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtravel/internal/domain"
	"mrtravel/internal/http/middleware"
	"mrtravel/internal/utils"
)

// ErrorResponse is the failure envelope every handler returns.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsInsufficientInventory(err):
		respondError(c, http.StatusBadRequest, "insufficient_inventory", err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		var ie domain.InternalError
		if errors.As(err, &ie) && ie.Err != nil {
			err = ie.Err
		}
		utils.Logger().WithField("request_id", middleware.GetRequestID(c)).WithError(err).Error("unhandled error")
		respondError(c, http.StatusInternalServerError, "internal_error", "Something went wrong!")
	}
}
