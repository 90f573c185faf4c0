package domain

import "time"

// Sports supported across the platform. Venues carry a subset as tags and
// every court is dedicated to exactly one of them.
const (
	SportFootball        = "football"
	SportBeachVolleyball = "beach_volleyball"
	SportBeachTennis     = "beach_tennis"
	SportTennis          = "tennis"
	SportBadminton       = "badminton"
	SportBasketball      = "basketball"
	SportVolleyball      = "volleyball"
)

func ValidSports() []string {
	return []string{
		SportFootball,
		SportBeachVolleyball,
		SportBeachTennis,
		SportTennis,
		SportBadminton,
		SportBasketball,
		SportVolleyball,
	}
}

func IsValidSport(sport string) bool {
	for _, s := range ValidSports() {
		if s == sport {
			return true
		}
	}
	return false
}

// Venue is read-only reference data from the core's perspective.
type Venue struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name" validate:"required"`
	Address      string    `json:"address"`
	Rating       float64   `json:"rating"`
	ImageURL     string    `json:"image_url,omitempty"`
	Sports       []string  `json:"sports" gorm:"serializer:json"`
	PricePerHour float64   `json:"price_per_hour" validate:"gte=0"`
	DistanceKm   float64   `json:"distance_km"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Courts []Court `json:"courts,omitempty" gorm:"foreignKey:VenueID"`
}

// Court belongs to exactly one venue and hosts a single sport.
type Court struct {
	ID      string `json:"id" gorm:"primaryKey"`
	VenueID string `json:"venue_id"`
	Name    string `json:"name" validate:"required"`
	Sport   string `json:"sport" validate:"required"`
}

// CourtByID returns the venue's court with the given id, or nil.
func (v *Venue) CourtByID(id string) *Court {
	for i := range v.Courts {
		if v.Courts[i].ID == id {
			return &v.Courts[i]
		}
	}
	return nil
}

func (v *Venue) SupportsSport(sport string) bool {
	for _, s := range v.Sports {
		if s == sport {
			return true
		}
	}
	return false
}
