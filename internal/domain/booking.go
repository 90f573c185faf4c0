package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDeclined  BookingStatus = "declined"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentPix        PaymentMethod = "pix"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentAtVenue    PaymentMethod = "venue"
)

func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentPix, PaymentCreditCard, PaymentAtVenue:
		return true
	}
	return false
}

// DurationHours is the fixed set of bookable slot lengths.
func ValidDurations() []float64 {
	return []float64{1.0, 1.5, 2.0}
}

func IsValidDuration(hours float64) bool {
	for _, d := range ValidDurations() {
		if d == hours {
			return true
		}
	}
	return false
}

// SlotSelection is a finalized wizard draft: everything booking creation
// needs to reserve one slot on one court.
type SlotSelection struct {
	UserID        string        `json:"user_id"`
	VenueID       string        `json:"venue_id"`
	CourtID       string        `json:"court_id"`
	Sport         string        `json:"sport"`
	Date          string        `json:"date"`
	StartTime     string        `json:"start_time"`
	DurationHours float64       `json:"duration_hours"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// Booking is a reserved court slot. Date is a calendar day (2006-01-02)
// and StartTime/EndTime are venue-local clock times (HH:MM) forming the
// half-open interval [start, end).
type Booking struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	VenueID       string        `json:"venue_id" validate:"required"`
	VenueName     string        `json:"venue_name"`
	CourtID       string        `json:"court_id" validate:"required"`
	CourtName     string        `json:"court_name"`
	Sport         string        `json:"sport" validate:"required"`
	UserID        string        `json:"user_id" validate:"required"`
	Date          string        `json:"date" validate:"required"`
	StartTime     string        `json:"start_time" validate:"required"`
	EndTime       string        `json:"end_time" validate:"required"`
	DurationHours float64       `json:"duration_hours"`
	Price         float64       `json:"price" validate:"gte=0"`
	Status        BookingStatus `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`
}
