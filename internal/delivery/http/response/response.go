package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope: {"status":"success"} or
// {"status":"error","message":"..."}, optionally extended with
// provider-specific detail.
type Response struct {
	Status        string      `json:"status"`
	Message       string      `json:"message,omitempty"`
	Data          interface{} `json:"data,omitempty"`
	CaptchaErrors []string    `json:"captchaErrors,omitempty"`
	RequestID     string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, data interface{}) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, Response{
		Status:    "success",
		Data:      data,
		RequestID: idStr,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, captchaErrors []string) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, Response{
		Status:        "error",
		Message:       message,
		CaptchaErrors: captchaErrors,
		RequestID:     idStr,
	})
}
