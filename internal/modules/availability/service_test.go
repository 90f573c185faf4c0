package availability

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListForVenueDate(ctx context.Context, venueID, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, venueID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:           "v1",
		Name:         "Arena Copacabana",
		Sports:       []string{domain.SportFootball, domain.SportBeachVolleyball},
		PricePerHour: 150,
		Courts: []domain.Court{
			{ID: "c1", VenueID: "v1", Name: "Court 1 (Sand)", Sport: domain.SportBeachVolleyball},
			{ID: "c2", VenueID: "v1", Name: "Court 2 (Turf)", Sport: domain.SportFootball},
			{ID: "c3", VenueID: "v1", Name: "Court 3 (Turf)", Sport: domain.SportFootball},
		},
	}
}

func newTestService(venues *MockVenueRepository, bookings *MockBookingRepository, now time.Time) *Service {
	s := NewService(venues, bookings)
	s.now = func() time.Time { return now }
	return s
}

func TestStartTimes_FutureDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	starts := StartTimes(date, now)

	assert.Len(t, starts, 16)
	assert.Equal(t, "07:00", starts[0])
	assert.Equal(t, "22:00", starts[15])
}

func TestStartTimes_TodayCutsPastHours(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	starts := StartTimes(date, now)

	// 14:00 has already begun; only strictly future hours remain.
	assert.NotContains(t, starts, "14:00")
	assert.Contains(t, starts, "15:00")
	assert.Equal(t, "15:00", starts[0])
	assert.Len(t, starts, 8)
}

func TestStartTimes_TodayLateEvening(t *testing.T) {
	now := time.Date(2026, 9, 1, 22, 10, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, StartTimes(date, now))
}

func TestIsCandidate(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsCandidate(future, now, "07:00"))
	assert.True(t, IsCandidate(future, now, "22:00"))
	assert.False(t, IsCandidate(future, now, "06:30"))
	assert.False(t, IsCandidate(future, now, "23:00"))

	// Today follows the same cutoff as StartTimes.
	assert.True(t, IsCandidate(today, now, "15:00"))
	assert.False(t, IsCandidate(today, now, "14:00"))
}

func TestCourtSlots_NoBookingsAllFree(t *testing.T) {
	mockVenues := new(MockVenueRepository)
	mockBookings := new(MockBookingRepository)

	mockVenues.On("GetByID", mock.Anything, "v1").Return(testVenue(), nil)
	mockBookings.On("ListForVenueDate", mock.Anything, "v1", "2026-09-05").Return([]domain.Booking{}, nil)

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(mockVenues, mockBookings, now)

	courts, err := service.CourtSlots(context.Background(), "v1", domain.SportFootball, "2026-09-05", 1.0)

	assert.NoError(t, err)
	assert.Len(t, courts, 2) // c2 and c3; the sand court hosts another sport
	for _, court := range courts {
		assert.Len(t, court.Slots, 16)
		for _, slot := range court.Slots {
			assert.False(t, slot.Booked)
		}
	}
}

func TestCourtSlots_ConflictIsPerCourt(t *testing.T) {
	mockVenues := new(MockVenueRepository)
	mockBookings := new(MockBookingRepository)

	mockVenues.On("GetByID", mock.Anything, "v1").Return(testVenue(), nil)
	mockBookings.On("ListForVenueDate", mock.Anything, "v1", "2026-09-05").Return([]domain.Booking{
		{VenueID: "v1", CourtID: "c2", Sport: domain.SportFootball, Date: "2026-09-05", StartTime: "18:00", EndTime: "19:00"},
	}, nil)

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(mockVenues, mockBookings, now)

	courts, err := service.CourtSlots(context.Background(), "v1", domain.SportFootball, "2026-09-05", 1.0)
	assert.NoError(t, err)

	bySlot := func(courtID, start string) Slot {
		for _, court := range courts {
			if court.CourtID != courtID {
				continue
			}
			for _, s := range court.Slots {
				if s.StartTime == start {
					return s
				}
			}
		}
		t.Fatalf("slot %s on %s not found", start, courtID)
		return Slot{}
	}

	assert.True(t, bySlot("c2", "18:00").Booked)
	// Touching boundary: the 19:00 slot on the same court stays free.
	assert.False(t, bySlot("c2", "19:00").Booked)
	assert.False(t, bySlot("c2", "17:00").Booked)
	// A booking on one court never blocks a sibling court.
	assert.False(t, bySlot("c3", "18:00").Booked)
}

func TestCourtSlots_LongerDurationWidensConflict(t *testing.T) {
	mockVenues := new(MockVenueRepository)
	mockBookings := new(MockBookingRepository)

	mockVenues.On("GetByID", mock.Anything, "v1").Return(testVenue(), nil)
	mockBookings.On("ListForVenueDate", mock.Anything, "v1", "2026-09-05").Return([]domain.Booking{
		{VenueID: "v1", CourtID: "c2", Sport: domain.SportFootball, Date: "2026-09-05", StartTime: "18:00", EndTime: "19:00"},
	}, nil)

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(mockVenues, mockBookings, now)

	courts, err := service.CourtSlots(context.Background(), "v1", domain.SportFootball, "2026-09-05", 1.5)
	assert.NoError(t, err)

	for _, court := range courts {
		if court.CourtID != "c2" {
			continue
		}
		for _, s := range court.Slots {
			switch s.StartTime {
			case "17:00":
				// 17:00-18:30 now reaches into the existing booking.
				assert.True(t, s.Booked)
			case "19:00":
				assert.False(t, s.Booked)
			}
		}
	}
}

func TestCourtSlots_Ordering(t *testing.T) {
	mockVenues := new(MockVenueRepository)
	mockBookings := new(MockBookingRepository)

	mockVenues.On("GetByID", mock.Anything, "v1").Return(testVenue(), nil)
	mockBookings.On("ListForVenueDate", mock.Anything, "v1", "2026-09-05").Return([]domain.Booking{}, nil)

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(mockVenues, mockBookings, now)

	courts, err := service.CourtSlots(context.Background(), "v1", domain.SportFootball, "2026-09-05", 1.0)
	assert.NoError(t, err)

	for _, court := range courts {
		for i := 1; i < len(court.Slots); i++ {
			assert.Less(t, court.Slots[i-1].StartTime, court.Slots[i].StartTime)
		}
	}
}

func TestCourtSlots_RejectsUnknownDuration(t *testing.T) {
	service := newTestService(new(MockVenueRepository), new(MockBookingRepository), time.Now())

	_, err := service.CourtSlots(context.Background(), "v1", domain.SportFootball, "2026-09-05", 0.5)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCourtSlots_RejectsSportVenueDoesNotOffer(t *testing.T) {
	mockVenues := new(MockVenueRepository)
	mockVenues.On("GetByID", mock.Anything, "v1").Return(testVenue(), nil)

	service := newTestService(mockVenues, new(MockBookingRepository), time.Now())

	_, err := service.CourtSlots(context.Background(), "v1", domain.SportTennis, "2026-09-05", 1.0)
	assert.ErrorIs(t, err, ErrSportFilter)
}

func TestIsFree(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("ListForVenueDate", mock.Anything, "v1", "2026-09-05").Return([]domain.Booking{
		{VenueID: "v1", CourtID: "c2", Date: "2026-09-05", StartTime: "18:00", EndTime: "19:00"},
	}, nil)

	service := newTestService(new(MockVenueRepository), mockBookings, time.Now())

	free, err := service.IsFree(context.Background(), "v1", "c2", "2026-09-05", "18:00", 1.0)
	assert.NoError(t, err)
	assert.False(t, free)

	free, err = service.IsFree(context.Background(), "v1", "c2", "2026-09-05", "19:00", 1.0)
	assert.NoError(t, err)
	assert.True(t, free)

	free, err = service.IsFree(context.Background(), "v1", "c3", "2026-09-05", "18:00", 1.0)
	assert.NoError(t, err)
	assert.True(t, free)
}
