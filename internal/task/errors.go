package task

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrProofRequired = errors.New("proof image required before completion")
	ErrInvalidFilter = errors.New("invalid list filter")
)
