package repository

import (
	"context"
	"errors"
	"time"

	"courtbook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// bookingModel carries the double-booking unique index. The index is
// partial: declined and cancelled rows fall outside it, so a freed slot
// can be booked again. It must cover exactly the statuses that
// ListForVenueDate treats as conflicts.
type bookingModel struct {
	ID            string     `gorm:"column:id;primaryKey"`
	VenueID       string     `gorm:"column:venue_id;index:idx_no_double_booking,unique,where:status <> 'declined' AND status <> 'cancelled'"`
	VenueName     string     `gorm:"column:venue_name"`
	CourtID       string     `gorm:"column:court_id;index:idx_no_double_booking,unique"`
	CourtName     string     `gorm:"column:court_name"`
	Sport         string     `gorm:"column:sport"`
	UserID        string     `gorm:"column:user_id"`
	Date          string     `gorm:"column:date;index:idx_no_double_booking,unique"`
	StartTime     string     `gorm:"column:start_time;index:idx_no_double_booking,unique"`
	EndTime       string     `gorm:"column:end_time"`
	DurationHours float64    `gorm:"column:duration_hours"`
	Price         float64    `gorm:"column:price"`
	Status        string     `gorm:"column:status"`
	PaymentMethod string     `gorm:"column:payment_method"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		VenueID:       m.VenueID,
		VenueName:     m.VenueName,
		CourtID:       m.CourtID,
		CourtName:     m.CourtName,
		Sport:         m.Sport,
		UserID:        m.UserID,
		Date:          m.Date,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		DurationHours: m.DurationHours,
		Price:         m.Price,
		Status:        domain.BookingStatus(m.Status),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		CourtID:       b.CourtID,
		CourtName:     b.CourtName,
		Sport:         b.Sport,
		UserID:        b.UserID,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		DurationHours: b.DurationHours,
		Price:         b.Price,
		Status:        string(b.Status),
		PaymentMethod: string(b.PaymentMethod),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

// IsDuplicateKey reports whether the error came from the unique
// double-booking index (identical court, date and start time).
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ListForVenueDate returns the non-cancelled, non-declined bookings for a
// venue on a calendar day — the conflict set for availability checks.
func (r *BookingRepository) ListForVenueDate(ctx context.Context, venueID, date string) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("venue_id = ? AND date = ? AND status NOT IN ?", venueID, date,
			[]string{string(domain.BookingCancelled), string(domain.BookingDeclined)}).
		Order("start_time").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Booking, error) {
	var models []bookingModel
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListPendingForVenues returns pending booking requests across the given
// venues, oldest first, for the owner dashboard.
func (r *BookingRepository) ListPendingForVenues(ctx context.Context, venueIDs []string) ([]domain.Booking, error) {
	if len(venueIDs) == 0 {
		return []domain.Booking{}, nil
	}

	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("venue_id IN ? AND status = ?", venueIDs, string(domain.BookingPending)).
		Order("created_at").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	updates := map[string]any{"status": string(status)}
	if status == domain.BookingCancelled {
		now := time.Now()
		updates["cancelled_at"] = &now
	}
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
