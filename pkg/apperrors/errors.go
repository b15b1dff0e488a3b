package apperrors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrEmptySQL        = errors.New("empty sql query")
	ErrUnsafeSQL       = errors.New("sql failed safety validation")
	ErrNoConnection    = errors.New("warehouse connection not available")
	ErrInvalidStatus   = errors.New("invalid feedback status")
	ErrStatusFinalized = errors.New("feedback status already finalized")

	ErrInvalidFrequency = errors.New("invalid subscription frequency")
)
