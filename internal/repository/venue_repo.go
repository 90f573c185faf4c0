package repository

import (
	"context"

	"courtbook/internal/domain"

	"gorm.io/gorm"
)

type VenueFilters struct {
	Sport  string
	Limit  int
	Offset int
}

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// GetAll returns venues with optional sport filter. The sport filter
// matches the venue's sport-tag list, not individual courts.
func (r *VenueRepository) GetAll(ctx context.Context, f VenueFilters) ([]domain.Venue, int64, error) {
	var venues []domain.Venue
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Venue{})

	if f.Sport != "" {
		// Sports is a JSON-serialized string list.
		q = q.Where("sports LIKE ?", "%\""+f.Sport+"\"%")
	}

	q.Count(&total)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	err := q.Preload("Courts").Find(&venues).Error
	return venues, total, err
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	var venue domain.Venue
	err := r.db.WithContext(ctx).
		Where("venues.id = ?", id).
		Preload("Courts").
		First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]domain.Venue, error) {
	var venues []domain.Venue
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Courts").
		Find(&venues).Error
	return venues, err
}
