package wizard

import (
	"sync"

	"github.com/google/uuid"

	"courtbook/internal/domain"
)

// Stage numbers the steps of the booking flow. Forward progress requires
// every field of the earlier stages to be set; moving an earlier selection
// clears everything downstream of it.
type Stage int

const (
	StageSport     Stage = 1
	StageVenue     Stage = 2
	StageSchedule  Stage = 3
	StageCheckout  Stage = 4
	StageSuccess   Stage = 5
	StageCancelled Stage = 6
)

func (s Stage) String() string {
	switch s {
	case StageSport:
		return "sport"
	case StageVenue:
		return "venue"
	case StageSchedule:
		return "schedule"
	case StageCheckout:
		return "checkout"
	case StageSuccess:
		return "success"
	case StageCancelled:
		return "cancelled"
	}
	return "unknown"
}

func (s Stage) terminal() bool {
	return s == StageSuccess || s == StageCancelled
}

// Draft is the wizard's mutable selection. Fields are filled in stage
// order; zero values mean "not chosen yet".
type Draft struct {
	Sport         string               `json:"sport,omitempty"`
	VenueID       string               `json:"venue_id,omitempty"`
	Date          string               `json:"date,omitempty"`
	DurationHours float64              `json:"duration_hours,omitempty"`
	StartTime     string               `json:"start_time,omitempty"`
	CourtID       string               `json:"court_id,omitempty"`
	PaymentMethod domain.PaymentMethod `json:"payment_method,omitempty"`
}

// Session is one wizard flow owned by one user. All mutation goes through
// the service while holding mu; inFlight marks an outstanding submission.
type Session struct {
	ID        string
	UserID    string
	Stage     Stage
	Draft     Draft
	BookingID string

	mu       sync.Mutex
	inFlight bool
}

// state snapshots the session for callers. Must be called with mu held.
func (sess *Session) state() State {
	return State{
		ID:        sess.ID,
		Stage:     int(sess.Stage),
		StageName: sess.Stage.String(),
		Draft:     sess.Draft,
		BookingID: sess.BookingID,
	}
}

// Store keeps live sessions in memory. Sessions are short-lived and
// per-user; nothing here survives a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Create(userID string) *Session {
	sess := &Session{
		ID:     uuid.NewString(),
		UserID: userID,
		Stage:  StageSport,
	}
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
