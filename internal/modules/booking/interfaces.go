package booking

import (
	"context"

	"courtbook/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Booking, error)
	ListPendingForVenues(ctx context.Context, venueIDs []string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]domain.Venue, error)
}
