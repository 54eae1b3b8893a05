package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvegadev/comanda/models"
	"github.com/mvegadev/comanda/usecases"
	"github.com/mvegadev/comanda/utils"
)

// statusFor maps domain errors onto HTTP status codes. Anything unrecognized
// is a server-side failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrEmptyOrder):
		return http.StatusBadRequest
	case errors.Is(err, usecases.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrTableUnavailable),
		errors.Is(err, models.ErrDuplicatePayment),
		errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidState):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondDomainError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	utils.RespondError(c, code, err)
}
