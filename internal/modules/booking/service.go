package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtbook/internal/domain"
	"courtbook/internal/pkg/validator"
	"courtbook/internal/repository"
	"courtbook/internal/timeslot"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	venues   VenueRepository
}

func NewService(bookings BookingRepository, venues VenueRepository) *Service {
	return &Service{bookings: bookings, venues: venues}
}

// CreateFromSelection reserves the slot described by a finalized wizard
// draft. The booking is persisted as pending with its price fixed at
// creation time; the double-booking index is the last line of defense
// against two clients grabbing the same slot.
func (s *Service) CreateFromSelection(ctx context.Context, sel domain.SlotSelection) (*domain.Booking, error) {
	if err := validateSelection(sel); err != nil {
		return nil, err
	}

	venue, err := s.venues.GetByID(ctx, sel.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: venue %s", ErrNotFound, sel.VenueID)
		}
		return nil, err
	}
	court := venue.CourtByID(sel.CourtID)
	if court == nil {
		return nil, fmt.Errorf("%w: court %s", ErrNotFound, sel.CourtID)
	}
	if court.Sport != sel.Sport {
		return nil, fmt.Errorf("%w: court %s does not host %s", ErrValidation, sel.CourtID, sel.Sport)
	}

	endTime, err := timeslot.AddDuration(sel.StartTime, sel.DurationHours)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		VenueID:       venue.ID,
		VenueName:     venue.Name,
		CourtID:       court.ID,
		CourtName:     court.Name,
		Sport:         sel.Sport,
		UserID:        sel.UserID,
		Date:          sel.Date,
		StartTime:     sel.StartTime,
		EndTime:       endTime,
		DurationHours: sel.DurationHours,
		Price:         roundToCents(venue.PricePerHour * sel.DurationHours),
		Status:        domain.BookingPending,
		PaymentMethod: sel.PaymentMethod,
	}

	if fields := validator.Validate(booking); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, fields)
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}
	return booking, nil
}

// MyBookings lists the caller's bookings, newest date first.
func (s *Service) MyBookings(ctx context.Context, userID string, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

// OwnerVenues lists the venues the owner runs.
func (s *Service) OwnerVenues(ctx context.Context, ownerID string) ([]domain.Venue, error) {
	return s.venues.GetByOwnerID(ctx, ownerID)
}

// PendingRequests lists pending bookings across all venues the owner runs.
func (s *Service) PendingRequests(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	venues, err := s.venues.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(venues) == 0 {
		return []domain.Booking{}, nil
	}
	ids := make([]string, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
	}
	return s.bookings.ListPendingForVenues(ctx, ids)
}

// HandleRequest approves or declines a pending booking on one of the
// owner's venues. Only pending bookings can transition.
func (s *Service) HandleRequest(ctx context.Context, ownerID, bookingID string, approve bool) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	venue, err := s.venues.GetByID(ctx, booking.VenueID)
	if err != nil {
		return nil, err
	}
	if venue.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	if booking.Status != domain.BookingPending {
		return nil, ErrNotPending
	}

	status := domain.BookingDeclined
	if approve {
		status = domain.BookingConfirmed
	}
	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}

func validateSelection(sel domain.SlotSelection) error {
	if sel.UserID == "" || sel.VenueID == "" || sel.CourtID == "" {
		return fmt.Errorf("%w: user, venue and court are required", ErrValidation)
	}
	if !domain.IsValidSport(sel.Sport) {
		return fmt.Errorf("%w: unknown sport %q", ErrValidation, sel.Sport)
	}
	if !domain.IsValidDuration(sel.DurationHours) {
		return fmt.Errorf("%w: duration %v", ErrValidation, sel.DurationHours)
	}
	if _, err := time.Parse(dateLayout, sel.Date); err != nil {
		return fmt.Errorf("%w: date %q", ErrValidation, sel.Date)
	}
	if _, err := timeslot.ToMinutes(sel.StartTime); err != nil {
		return fmt.Errorf("%w: start time %q", ErrValidation, sel.StartTime)
	}
	if sel.PaymentMethod != "" && !domain.IsValidPaymentMethod(sel.PaymentMethod) {
		return fmt.Errorf("%w: payment method %q", ErrValidation, sel.PaymentMethod)
	}
	return nil
}

func roundToCents(x float64) float64 {
	return math.Round(x*100) / 100
}
