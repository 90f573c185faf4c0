package catalog

import (
	"context"
	"testing"

	"courtbook/internal/domain"
	"courtbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetAll(ctx context.Context, f repository.VenueFilters) ([]domain.Venue, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Venue), args.Get(1).(int64), args.Error(2)
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func TestListVenues_SportFilterPassedThrough(t *testing.T) {
	mockVenues := new(MockVenueRepository)
	service := NewService(mockVenues)

	want := repository.VenueFilters{Sport: domain.SportFootball, Limit: 20, Offset: 0}
	mockVenues.On("GetAll", mock.Anything, want).Return([]domain.Venue{{ID: "v1"}}, int64(1), nil)

	venues, total, err := service.ListVenues(context.Background(), domain.SportFootball, 0, 0)

	assert.NoError(t, err)
	assert.Len(t, venues, 1)
	assert.Equal(t, int64(1), total)
	mockVenues.AssertExpectations(t)
}

func TestListVenues_RejectsUnknownSport(t *testing.T) {
	service := NewService(new(MockVenueRepository))

	_, _, err := service.ListVenues(context.Background(), "cricket", 0, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListVenues_ClampsPaging(t *testing.T) {
	mockVenues := new(MockVenueRepository)
	service := NewService(mockVenues)

	want := repository.VenueFilters{Limit: 20, Offset: 0}
	mockVenues.On("GetAll", mock.Anything, want).Return([]domain.Venue{}, int64(0), nil)

	_, _, err := service.ListVenues(context.Background(), "", 500, -3)
	assert.NoError(t, err)
	mockVenues.AssertExpectations(t)
}
