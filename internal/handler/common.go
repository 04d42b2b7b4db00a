package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codaverse/internal/dto"
	"codaverse/internal/service"
)

// respondServiceError translates service sentinel errors onto the HTTP
// status taxonomy. Unexpected errors surface as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, service.ErrNameInUse):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Errors: map[string][]string{"username": {"A user with that username already exists."}},
		})
	case errors.Is(err, service.ErrEmailInUse):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Errors: map[string][]string{"email": {"A user with that email already exists."}},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondBindingError returns the field->messages mapping for a failed bind.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.FieldErrors(err))
}

// pathID parses the :id path parameter. A non-numeric id cannot reference
// any row, so it reports 404 rather than 400.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return id, true
}
