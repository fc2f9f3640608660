package httpx

import (
	"net/http"

	"restaurant-review-server/internal/logger"
	"restaurant-review-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// MsgBadRequest 表单无法解析时的统一文案
const MsgBadRequest = "The submitted form could not be read."

// WriteServiceError writes a standardized JSON error response for service-layer errors.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	status, message := Describe(err, fallbackMessage)
	c.JSON(status, gin.H{"error": message})
}

// Describe returns the HTTP status and user-facing message for err.
// Errors that are not ServiceErrors are logged and reported with fallbackMessage.
func Describe(err error, fallbackMessage string) (int, string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		if serviceErr.Code == service.ErrorCodeInternal {
			logger.Errorf("%s: %v", serviceErr.Message, serviceErr.Unwrap())
		}
		return StatusOf(serviceErr.Code), serviceErr.Message
	}
	logger.Errorf("%s: %v", fallbackMessage, err)
	return http.StatusInternalServerError, fallbackMessage
}

// StatusOf maps an error code to its HTTP status.
func StatusOf(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeConflict:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
