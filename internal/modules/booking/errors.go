package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("booking not found")
	ErrSlotConflict = errors.New("slot already booked")
	ErrForbidden    = errors.New("booking belongs to another owner's venue")
	ErrNotPending   = errors.New("booking is not pending")
)
