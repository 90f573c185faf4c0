package booking

import "courtbook/internal/domain"

type ListResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}
