package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"courtbook/internal/database"
	"courtbook/internal/domain"
)

func newTestRepo(t *testing.T) *BookingRepository {
	t.Helper()
	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewBookingRepository(db)
}

func testBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		VenueID:       "v1",
		VenueName:     "Arena Copacabana",
		CourtID:       "c2",
		CourtName:     "Court 2 (Turf)",
		Sport:         domain.SportFootball,
		UserID:        "u1",
		Date:          "2026-09-03",
		StartTime:     "18:00",
		EndTime:       "19:30",
		DurationHours: 1.5,
		Price:         225,
		Status:        domain.BookingPending,
		PaymentMethod: domain.PaymentPix,
	}
}

func TestCreate_DuplicateActiveSlot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, testBooking("b1")))

	err := repo.Create(ctx, testBooking("b2"))
	assert.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

func TestCreate_RebooksSlotAfterTerminalStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingDeclined, domain.BookingCancelled} {
		t.Run(string(status), func(t *testing.T) {
			repo := newTestRepo(t)
			ctx := context.Background()

			assert.NoError(t, repo.Create(ctx, testBooking("b1")))
			assert.NoError(t, repo.UpdateStatus(ctx, "b1", status))

			// The slot no longer conflicts, so it must be bookable again.
			conflicts, err := repo.ListForVenueDate(ctx, "v1", "2026-09-03")
			assert.NoError(t, err)
			assert.Empty(t, conflicts)

			assert.NoError(t, repo.Create(ctx, testBooking("b2")))
		})
	}
}
