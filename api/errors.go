package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsConflict(err):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrUnknownFlightKind),
		errors.Is(err, passengers.ErrUnknownField):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
