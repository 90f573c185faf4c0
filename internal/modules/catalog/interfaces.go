package catalog

import (
	"context"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

type VenueRepository interface {
	GetAll(ctx context.Context, f repository.VenueFilters) ([]domain.Venue, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
}
