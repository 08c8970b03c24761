package http

import (
	"errors"
	"net/http"

	"storeadmin/internal/core/domain/services"
	"storeadmin/internal/generated/servers"
	"storeadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain error classes to HTTP codes. Anything unclassified
// gets fallback.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return fallback
	}
}

func writeError(ctx echo.Context, err error, fallback int, message string) error {
	code := statusFor(err, fallback)
	if code < http.StatusInternalServerError {
		message = message + ": " + err.Error()
	}
	return ctx.JSON(code, servers.Error{
		Code:    int32(code), //nolint:gosec // HTTP status codes fit int32
		Message: message,
	})
}

func toBadge(b services.Badge) servers.Badge {
	return servers.Badge{
		Tier:  servers.BadgeTier(b.Tier),
		Icon:  b.Icon,
		Label: b.Label,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
