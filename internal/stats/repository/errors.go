package repository

import "errors"

var ErrFailedToSnapshot = errors.New("failed to read snapshot")
