package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	// CaptchaErrors carries provider-reported error codes so the boundary
	// can echo them to the client alongside the message.
	CaptchaErrors []string `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func MethodNotAllowed() *AppError {
	return New(http.StatusMethodNotAllowed, "Error: Method not allowed", nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func Unprocessable(message string) *AppError {
	return New(http.StatusUnprocessableEntity, message, nil)
}

// ServerConfig reports a deployment bug (bad operator configuration). It is
// surfaced as a 500 because the client can do nothing about it.
func ServerConfig(message string) *AppError {
	return New(http.StatusInternalServerError, message, nil)
}

// Delivery wraps a transport failure, exposing the transport's detail string.
func Delivery(err error) *AppError {
	return New(http.StatusInternalServerError, "Error: "+err.Error(), err)
}
