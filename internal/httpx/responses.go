package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrBodyTooLarge is returned by DecodeJSON when the body exceeds the limit set
// by RequestSizeLimitMiddleware.
var ErrBodyTooLarge = errors.New("request body too large")

const msgBodyTooLarge = "Request body too large"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse pairs a human readable message with the affected entity.
type MessageResponse map[string]any

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func JSONOK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

func JSONCreated(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, v)
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Error: message})
}

// DecodeJSON reads a JSON request body into dst. Unknown fields are ignored
// and an empty body leaves dst untouched.
func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &tooLarge):
		return fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	return err
}

// JSONDecodeError answers a failed DecodeJSON: 413 for oversized bodies,
// otherwise 400 with message.
func JSONDecodeError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, ErrBodyTooLarge) {
		JSONError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return
	}
	JSONError(w, http.StatusBadRequest, message)
}
