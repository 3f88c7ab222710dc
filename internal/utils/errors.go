package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lukasringel/economy-service/internal/services"
)

// RespondServiceError writes the HTTP mapping of a service failure:
// AlreadyExists 409, NotFound 404, MalformedInput 400, anything else 500.
func RespondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrMalformedInput):
		status = http.StatusBadRequest
	}
	c.JSON(status, NewErrorResponse(status, err.Error()))
}
