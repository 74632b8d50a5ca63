package httputils

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func BadRequest(message string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: message}
}

// HandleError writes err as a JSON error and returns the status code used.
func HandleError(w http.ResponseWriter, err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		JSONError(w, httpErr.Code, httpErr.Message)
		return httpErr.Code
	}
	JSONError(w, http.StatusInternalServerError, "Internal server error")
	return http.StatusInternalServerError
}
