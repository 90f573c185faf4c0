package wizard

import "errors"

var (
	ErrNotFound            = errors.New("wizard session not found")
	ErrInvalidStage        = errors.New("event not allowed in current stage")
	ErrIncompleteSelection = errors.New("selection is missing required fields")
	ErrValidation          = errors.New("validation error")
	ErrOutOfRange          = errors.New("date outside the booking window")
	ErrCourtMismatch       = errors.New("court does not host the selected sport")
	ErrSlotTaken           = errors.New("slot is already booked")
	ErrStaleSlot           = errors.New("slot was booked after selection")
	ErrSubmissionInFlight  = errors.New("submission already in progress")
	ErrSubmissionFailed    = errors.New("booking creation failed")
)
