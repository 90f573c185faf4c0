package availability

import (
	"context"

	"courtbook/internal/domain"
)

// VenueRepository provides read-only venue reference data.
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
}

// BookingRepository lists the conflict set for a venue and calendar day.
type BookingRepository interface {
	ListForVenueDate(ctx context.Context, venueID, date string) ([]domain.Booking, error)
}
