// Package api renders JSON responses and maps errors to status codes.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("render json failed", "error", err)
	}
}

// Message renders {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Decode reads a JSON request body into dst. An empty body leaves dst
// untouched.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return &DecodeError{err: err}
	}
	return nil
}

// DecodeError reports a malformed request body.
type DecodeError struct {
	err error
}

func (e *DecodeError) Error() string {
	return "invalid request body: " + e.err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.err
}
