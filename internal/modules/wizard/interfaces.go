package wizard

import (
	"context"

	"courtbook/internal/domain"
)

// VenueRepository resolves venues so slot picks can be checked against the
// venue's courts before touching availability.
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
}

// SlotChecker answers whether one concrete slot is free. Backed by the
// availability service; called on pick and again on submit.
type SlotChecker interface {
	IsFree(ctx context.Context, venueID, courtID, date, start string, durationHours float64) (bool, error)
}

// BookingCreator is the external reservation collaborator. The wizard only
// applies Success after it confirms.
type BookingCreator interface {
	CreateFromSelection(ctx context.Context, sel domain.SlotSelection) (*domain.Booking, error)
}
