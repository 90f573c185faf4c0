package wizard

import "courtbook/internal/domain"

// State is the session view returned from every wizard endpoint.
type State struct {
	ID        string `json:"id"`
	Stage     int    `json:"stage"`
	StageName string `json:"stage_name"`
	Draft     Draft  `json:"draft"`
	BookingID string `json:"booking_id,omitempty"`
}

type PickSportRequest struct {
	Sport string `json:"sport" binding:"required"`
}

type PickVenueRequest struct {
	VenueID string `json:"venue_id" binding:"required"`
}

// SetScheduleRequest carries a partial update: either field may be
// omitted to leave the current value in place.
type SetScheduleRequest struct {
	Date          *string  `json:"date"`
	DurationHours *float64 `json:"duration_hours"`
}

type PickSlotRequest struct {
	CourtID   string `json:"court_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

type SubmitRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type SubmitResponse struct {
	Session State           `json:"session"`
	Booking *domain.Booking `json:"booking"`
}
