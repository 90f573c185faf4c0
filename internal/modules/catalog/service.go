package catalog

import (
	"context"
	"errors"
	"fmt"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("venue not found")
)

// Service is the read-only venue catalog backing the wizard's venue stage.
type Service struct {
	venues VenueRepository
}

func NewService(venues VenueRepository) *Service {
	return &Service{venues: venues}
}

// ListVenues returns venues, optionally narrowed to ones tagged with the
// given sport.
func (s *Service) ListVenues(ctx context.Context, sport string, limit, offset int) ([]domain.Venue, int64, error) {
	if sport != "" && !domain.IsValidSport(sport) {
		return nil, 0, fmt.Errorf("%w: unknown sport %q", ErrValidation, sport)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.venues.GetAll(ctx, repository.VenueFilters{Sport: sport, Limit: limit, Offset: offset})
}

func (s *Service) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return venue, nil
}
