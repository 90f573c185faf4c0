package availability

import (
	"context"
	"fmt"
	"time"

	"courtbook/internal/domain"
	"courtbook/internal/timeslot"
)

const (
	// Bookable start times run every full hour from 07:00 to 22:00.
	baseStartHour = 7
	baseEndHour   = 22

	dateLayout = "2006-01-02"
)

// Slot is a candidate booking interval on one court, annotated with its
// conflict status. Derived on every call, never stored.
type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CourtID   string `json:"court_id"`
	CourtName string `json:"court_name"`
	Booked    bool   `json:"booked"`
}

type CourtAvailability struct {
	CourtID   string `json:"court_id"`
	CourtName string `json:"court_name"`
	Slots     []Slot `json:"slots"`
}

// StartTimes returns the ordered candidate start times for a calendar day.
// When the day is today, hours that have already begun are dropped; any
// other day gets the full base set. The result is regenerated per call
// because the cutoff moves with the wall clock.
func StartTimes(date, now time.Time) []string {
	today := sameDay(date, now)

	out := make([]string, 0, baseEndHour-baseStartHour+1)
	for h := baseStartHour; h <= baseEndHour; h++ {
		if today && h <= now.Hour() {
			continue
		}
		out = append(out, timeslot.FormatMinutes(h*60))
	}
	return out
}

// IsCandidate reports whether start is one of the candidate start times
// for the day, under the same today cutoff StartTimes applies.
func IsCandidate(date, now time.Time, start string) bool {
	for _, s := range StartTimes(date, now) {
		if s == start {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

type Service struct {
	venues   VenueRepository
	bookings BookingRepository
	now      func() time.Time
}

func NewService(venues VenueRepository, bookings BookingRepository) *Service {
	return &Service{
		venues:   venues,
		bookings: bookings,
		now:      time.Now,
	}
}

// CourtSlots builds the annotated slot list for every court of the venue
// that hosts the given sport. A slot is booked iff an existing booking on
// the same court and date overlaps it under the half-open rule; bookings
// on other courts never conflict.
func (s *Service) CourtSlots(ctx context.Context, venueID, sport, date string, durationHours float64) ([]CourtAvailability, error) {
	if !domain.IsValidDuration(durationHours) {
		return nil, fmt.Errorf("%w: duration %v", ErrValidation, durationHours)
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrValidation, date)
	}

	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if !venue.SupportsSport(sport) {
		return nil, ErrSportFilter
	}

	existing, err := s.bookings.ListForVenueDate(ctx, venueID, date)
	if err != nil {
		return nil, err
	}

	starts := StartTimes(day, s.now())

	out := make([]CourtAvailability, 0)
	for _, court := range venue.Courts {
		if court.Sport != sport {
			continue
		}

		slots := make([]Slot, 0, len(starts))
		for _, start := range starts {
			end, err := timeslot.AddDuration(start, durationHours)
			if err != nil {
				return nil, err
			}
			booked, err := conflicts(existing, court.ID, start, end)
			if err != nil {
				return nil, err
			}
			slots = append(slots, Slot{
				StartTime: start,
				EndTime:   end,
				CourtID:   court.ID,
				CourtName: court.Name,
				Booked:    booked,
			})
		}
		out = append(out, CourtAvailability{
			CourtID:   court.ID,
			CourtName: court.Name,
			Slots:     slots,
		})
	}
	return out, nil
}

// IsFree reports whether one specific slot is currently unbooked. Used at
// slot-pick time and again before submission to catch staleness.
func (s *Service) IsFree(ctx context.Context, venueID, courtID, date, start string, durationHours float64) (bool, error) {
	end, err := timeslot.AddDuration(start, durationHours)
	if err != nil {
		return false, err
	}

	existing, err := s.bookings.ListForVenueDate(ctx, venueID, date)
	if err != nil {
		return false, err
	}

	booked, err := conflicts(existing, courtID, start, end)
	if err != nil {
		return false, err
	}
	return !booked, nil
}

func conflicts(existing []domain.Booking, courtID, start, end string) (bool, error) {
	startMin, err := timeslot.ToMinutes(start)
	if err != nil {
		return false, err
	}
	endMin, err := timeslot.ToMinutes(end)
	if err != nil {
		return false, err
	}

	for _, b := range existing {
		if b.CourtID != courtID {
			continue
		}
		bStart, err := timeslot.ToMinutes(b.StartTime)
		if err != nil {
			return false, err
		}
		bEnd, err := timeslot.ToMinutes(b.EndTime)
		if err != nil {
			return false, err
		}
		if timeslot.Overlaps(startMin, endMin, bStart, bEnd) {
			return true, nil
		}
	}
	return false, nil
}
