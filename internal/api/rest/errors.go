package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the uniform error body returned by every endpoint.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func respondBadRequest(c *gin.Context, message, details string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, APIError{
		Code:    "bad_request",
		Message: message,
		Details: details,
	})
}

func respondNotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, APIError{
		Code:    "not_found",
		Message: message,
	})
}

func respondInternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{
		Code:    "internal_error",
		Message: "internal server error",
	})
}
