package repository

import (
	"gorm.io/gorm"

	"courtbook/internal/domain"
)

// AutoMigrate creates or updates the schema. Bookings are migrated from
// the repository model so the double-booking unique index is created.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Venue{},
		&domain.Court{},
		&bookingModel{},
	)
}
