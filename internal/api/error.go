package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cheickthiam/portfolio/internal/ctxkeys"
	"github.com/cheickthiam/portfolio/internal/repository"
	"github.com/cheickthiam/portfolio/internal/service"
	"github.com/cheickthiam/portfolio/internal/validation"
)

// Error codes returned in the "code" field.
const (
	CodeValidation           = "ValidationError"
	CodeNotFound             = "NotFound"
	CodeNoToken              = "NoToken"
	CodeInvalidToken         = "InvalidOrExpiredToken"
	CodeInvalidCredentials   = "InvalidCredentials"
	CodeWrongCurrentPassword = "WrongCurrentPassword"
	CodeEmailInUse           = "EmailInUse"
	CodeConflict             = "Conflict"
	CodeRateLimited          = "RateLimited"
	CodeStorageNotConfigured = "StorageNotConfigured"
	CodeUploadFailed         = "UploadFailed"
	CodeInternal             = "InternalError"
)

type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Fail writes an error body with an explicit status and code.
func Fail(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, errorBody{Status: "error", Code: code, Message: message})
}

var notFound = []error{
	repository.ErrAdminNotFound,
	repository.ErrExperienceNotFound,
	repository.ErrProjectNotFound,
	repository.ErrCertificationNotFound,
	repository.ErrContactNotFound,
	repository.ErrProfileNotFound,
}

// Error is the terminal error responder. Known errors map to their status;
// anything else is logged and answered with 500, with the real message
// hidden in production.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := classify(err)

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
		if code == CodeInternal && isProduction(r) {
			message = "Internal Server Error"
		}
	}

	Fail(w, status, code, message)
}

func classify(err error) (int, string, string) {
	var verr *validation.Error
	var derr *DecodeError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, CodeValidation, verr.Message
	case errors.As(err, &derr):
		return http.StatusBadRequest, CodeValidation, derr.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, CodeInvalidCredentials, "Invalid credentials"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, CodeInvalidToken, "Invalid or expired token"
	case errors.Is(err, service.ErrWrongCurrentPassword):
		return http.StatusUnauthorized, CodeWrongCurrentPassword, "Current password is incorrect"
	case errors.Is(err, service.ErrEmailInUse):
		return http.StatusBadRequest, CodeEmailInUse, "Email already in use"
	case errors.Is(err, service.ErrAdminExists):
		return http.StatusConflict, CodeConflict, "An admin account already exists"
	case errors.Is(err, service.ErrStorageNotConfigured):
		return http.StatusInternalServerError, CodeStorageNotConfigured, "File storage is not configured"
	case errors.Is(err, service.ErrUploadFailed):
		return http.StatusInternalServerError, CodeUploadFailed, "File upload failed"
	}

	for _, target := range notFound {
		if errors.Is(err, target) {
			return http.StatusNotFound, CodeNotFound, capitalize(target.Error())
		}
	}

	return http.StatusInternalServerError, CodeInternal, err.Error()
}

func isProduction(r *http.Request) bool {
	cfg := ctxkeys.Config(r.Context())
	return cfg == nil || cfg.IsProduction()
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// Panic answers a recovered panic. The stack is only returned in development.
func Panic(w http.ResponseWriter, r *http.Request, recovered any, stack []byte) {
	slog.Error("panic recovered",
		"panic", recovered,
		"method", r.Method,
		"path", r.URL.Path,
		"stack", string(stack),
	)

	body := errorBody{Status: "error", Code: CodeInternal, Message: "Internal Server Error"}
	if cfg := ctxkeys.Config(r.Context()); cfg != nil && cfg.IsDevelopment() {
		body.Message = fmt.Sprint(recovered)
		body.Stack = string(stack)
	}
	JSON(w, http.StatusInternalServerError, body)
}
