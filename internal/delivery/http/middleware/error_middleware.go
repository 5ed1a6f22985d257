package middleware

import (
	"errors"
	"net/http"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps the last error appended to the context to the JSON
// envelope, exactly once, at the boundary.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, appErr.CaptchaErrors)
			} else {
				// SECURITY: Never expose internal error details to clients.
				// Log the actual error server-side for debugging, but send a
				// generic message to the user to prevent information disclosure.
				logger.Log.Error("Internal server error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An error occurred. Please try again later.", nil)
			}
		}
	}
}
