package http

import (
	"smartstudy/internal/task"
	pkgErrors "smartstudy/pkg/errors"
	"smartstudy/pkg/upload"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrProofRequired:
		return pkgErrors.NewHTTPError(400, "proof image required before completion")
	case task.ErrInvalidFilter:
		return pkgErrors.NewHTTPError(400, "invalid list filter")
	case upload.ErrNotImage:
		return pkgErrors.NewHTTPError(400, "only image files are allowed")
	case upload.ErrTooLarge:
		return pkgErrors.NewHTTPError(413, "file too large (max 5 MB)")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
