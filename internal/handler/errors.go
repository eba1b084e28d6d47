package handler

import (
	"errors"
	"net/http"

	"bookmydoc-api/internal/service"
	"bookmydoc-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// mapServiceError translates service-layer errors into HTTP responses.
// Unknown errors become a generic 500 so storage details never leak out.
func mapServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.ErrorResponse(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
