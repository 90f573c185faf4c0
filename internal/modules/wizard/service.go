package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"courtbook/internal/domain"
	"courtbook/internal/modules/availability"
)

const (
	dateLayout = "2006-01-02"

	// bookingWindowDays is the rolling window a date may fall in,
	// counted from today inclusive.
	bookingWindowDays = 7

	defaultDurationHours = 1.0
)

// Service drives the four-stage booking flow. Every event locks the
// session, checks the re-entrancy guard, validates prerequisites and
// applies the transition; rejected events leave the session untouched.
type Service struct {
	store    *Store
	venues   VenueRepository
	slots    SlotChecker
	bookings BookingCreator
	now      func() time.Time
}

func NewService(store *Store, venues VenueRepository, slots SlotChecker, bookings BookingCreator) *Service {
	return &Service{
		store:    store,
		venues:   venues,
		slots:    slots,
		bookings: bookings,
		now:      time.Now,
	}
}

// Start opens a fresh session at the sport stage.
func (s *Service) Start(userID string) State {
	sess := s.store.Create(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state()
}

// Get returns the current session state. Sessions are private to the user
// who opened them; anyone else gets not-found.
func (s *Service) Get(sessionID, userID string) (State, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return State{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.UserID != userID {
		return State{}, ErrNotFound
	}
	return sess.state(), nil
}

// apply runs one mutating event under the session lock. Events are
// rejected wholesale while a submission is outstanding.
func (s *Service) apply(sessionID, userID string, event func(*Session) error) (State, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return State{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.UserID != userID {
		return State{}, ErrNotFound
	}
	if sess.inFlight {
		return State{}, ErrSubmissionInFlight
	}
	if sess.Stage.terminal() {
		return State{}, ErrInvalidStage
	}
	if err := event(sess); err != nil {
		return State{}, err
	}
	return sess.state(), nil
}

// PickSport sets the sport and restarts everything downstream of it.
func (s *Service) PickSport(sessionID, userID, sport string) (State, error) {
	return s.apply(sessionID, userID, func(sess *Session) error {
		if !domain.IsValidSport(sport) {
			return fmt.Errorf("%w: unknown sport %q", ErrValidation, sport)
		}
		sess.Draft = Draft{Sport: sport}
		sess.Stage = StageVenue
		return nil
	})
}

// PickVenue sets the venue and moves to the schedule stage with the first
// day of the window preselected. A previously picked slot is cleared.
func (s *Service) PickVenue(ctx context.Context, sessionID, userID, venueID string) (State, error) {
	return s.apply(sessionID, userID, func(sess *Session) error {
		if sess.Draft.Sport == "" {
			return ErrIncompleteSelection
		}
		venue, err := s.venues.GetByID(ctx, venueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !venue.SupportsSport(sess.Draft.Sport) {
			return fmt.Errorf("%w: venue does not offer %s", ErrValidation, sess.Draft.Sport)
		}
		sess.Draft.VenueID = venue.ID
		sess.Draft.Date = s.now().Format(dateLayout)
		sess.Draft.DurationHours = defaultDurationHours
		sess.Draft.StartTime = ""
		sess.Draft.CourtID = ""
		sess.Stage = StageSchedule
		return nil
	})
}

// SetSchedule updates date and/or duration. Either change invalidates a
// previously picked slot, since it may no longer be free, and rewinds the
// flow to the schedule stage.
func (s *Service) SetSchedule(sessionID, userID string, date *string, durationHours *float64) (State, error) {
	return s.apply(sessionID, userID, func(sess *Session) error {
		if sess.Stage < StageSchedule {
			return ErrInvalidStage
		}
		if date != nil {
			if err := s.checkWindow(*date); err != nil {
				return err
			}
			sess.Draft.Date = *date
		}
		if durationHours != nil {
			if !domain.IsValidDuration(*durationHours) {
				return fmt.Errorf("%w: duration %v", ErrValidation, *durationHours)
			}
			sess.Draft.DurationHours = *durationHours
		}
		sess.Draft.StartTime = ""
		sess.Draft.CourtID = ""
		sess.Stage = StageSchedule
		return nil
	})
}

// PickSlot records the chosen court and start time and advances to
// checkout. The start time must be one of the candidates offered for the
// drafted date, the court must belong to the venue and host the drafted
// sport, and the slot must still be free at pick time.
func (s *Service) PickSlot(ctx context.Context, sessionID, userID, courtID, startTime string) (State, error) {
	return s.apply(sessionID, userID, func(sess *Session) error {
		if sess.Stage < StageSchedule {
			return ErrInvalidStage
		}
		d := sess.Draft
		if d.Sport == "" || d.VenueID == "" || d.Date == "" || d.DurationHours == 0 || courtID == "" || startTime == "" {
			return ErrIncompleteSelection
		}
		day, err := time.ParseInLocation(dateLayout, d.Date, time.Local)
		if err != nil {
			return fmt.Errorf("%w: date %q", ErrValidation, d.Date)
		}
		if !availability.IsCandidate(day, s.now(), startTime) {
			return fmt.Errorf("%w: start time %s is not offered on %s", ErrOutOfRange, startTime, d.Date)
		}
		venue, err := s.venues.GetByID(ctx, d.VenueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		court := venue.CourtByID(courtID)
		if court == nil {
			return fmt.Errorf("%w: court %s", ErrNotFound, courtID)
		}
		if court.Sport != d.Sport {
			return ErrCourtMismatch
		}
		free, err := s.slots.IsFree(ctx, d.VenueID, courtID, d.Date, startTime, d.DurationHours)
		if err != nil {
			return err
		}
		if !free {
			return ErrSlotTaken
		}
		sess.Draft.CourtID = courtID
		sess.Draft.StartTime = startTime
		sess.Stage = StageCheckout
		return nil
	})
}

// Back rewinds one stage. Draft fields are deliberately preserved so the
// user can step forward again without re-entering everything.
func (s *Service) Back(sessionID, userID string) (State, error) {
	return s.apply(sessionID, userID, func(sess *Session) error {
		if sess.Stage <= StageSport || sess.Stage > StageCheckout {
			return ErrInvalidStage
		}
		sess.Stage--
		return nil
	})
}

// Submit re-validates slot freshness, delegates creation to the booking
// collaborator and applies Success only once it confirms. While the call
// is outstanding every other event on the session is rejected; Cancel is
// the exception and makes the eventual result be dropped.
func (s *Service) Submit(ctx context.Context, sessionID, userID string, payment domain.PaymentMethod) (State, *domain.Booking, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return State{}, nil, err
	}

	sess.mu.Lock()
	if sess.UserID != userID {
		sess.mu.Unlock()
		return State{}, nil, ErrNotFound
	}
	if sess.inFlight {
		sess.mu.Unlock()
		return State{}, nil, ErrSubmissionInFlight
	}
	if sess.Stage != StageCheckout {
		sess.mu.Unlock()
		return State{}, nil, ErrInvalidStage
	}
	d := sess.Draft
	if d.Sport == "" || d.VenueID == "" || d.Date == "" || d.DurationHours == 0 || d.StartTime == "" || d.CourtID == "" {
		sess.mu.Unlock()
		return State{}, nil, ErrIncompleteSelection
	}
	if !domain.IsValidPaymentMethod(payment) {
		sess.mu.Unlock()
		return State{}, nil, fmt.Errorf("%w: payment method %q", ErrValidation, payment)
	}
	sess.Draft.PaymentMethod = payment
	d = sess.Draft
	sess.inFlight = true
	sess.mu.Unlock()

	booking, submitErr := s.reserve(ctx, sess.UserID, d)

	sess.mu.Lock()
	sess.inFlight = false
	if sess.Stage != StageCheckout {
		// Cancelled while the call was outstanding: drop the result.
		sess.mu.Unlock()
		s.store.Delete(sess.ID)
		return State{}, nil, ErrInvalidStage
	}
	if submitErr != nil {
		state := sess.state()
		sess.mu.Unlock()
		return state, nil, submitErr
	}
	sess.Stage = StageSuccess
	sess.BookingID = booking.ID
	state := sess.state()
	sess.mu.Unlock()
	return state, booking, nil
}

func (s *Service) reserve(ctx context.Context, userID string, d Draft) (*domain.Booking, error) {
	free, err := s.slots.IsFree(ctx, d.VenueID, d.CourtID, d.Date, d.StartTime, d.DurationHours)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	if !free {
		return nil, ErrStaleSlot
	}
	booking, err := s.bookings.CreateFromSelection(ctx, domain.SlotSelection{
		UserID:        userID,
		VenueID:       d.VenueID,
		CourtID:       d.CourtID,
		Sport:         d.Sport,
		Date:          d.Date,
		StartTime:     d.StartTime,
		DurationHours: d.DurationHours,
		PaymentMethod: d.PaymentMethod,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	return booking, nil
}

// Cancel abandons the flow from any non-success stage. Allowed even while
// a submission is in flight; the submitter notices and discards the
// result when it lands.
func (s *Service) Cancel(sessionID, userID string) error {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	if sess.UserID != userID {
		sess.mu.Unlock()
		return ErrNotFound
	}
	if sess.Stage == StageSuccess {
		sess.mu.Unlock()
		return ErrInvalidStage
	}
	sess.Stage = StageCancelled
	inFlight := sess.inFlight
	sess.mu.Unlock()
	if !inFlight {
		s.store.Delete(sessionID)
	}
	return nil
}

// checkWindow accepts dates from today through today+6 inclusive.
func (s *Service) checkWindow(date string) error {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return fmt.Errorf("%w: date %q", ErrValidation, date)
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	offset := int(day.Sub(today).Hours() / 24)
	if offset < 0 || offset >= bookingWindowDays {
		return fmt.Errorf("%w: %s", ErrOutOfRange, date)
	}
	return nil
}
