package http

import (
	pkgErrors "smartstudy/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Every stats failure is a snapshot read failure, so there is only one
// outcome worth distinguishing.
func (h *handler) mapError(err error) error {
	return pkgErrors.NewHTTPError(500, "internal server error")
}
