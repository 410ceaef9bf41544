package http

import (
	"smartstudy/internal/auth"
	pkgErrors "smartstudy/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrEmailTaken:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case auth.ErrInvalidTimezone:
		return pkgErrors.NewHTTPError(400, "invalid timezone")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
