package postgres

import (
	"context"
	"database/sql"
	"time"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, service_id, provider_id, customer_id, reference_code, to_char(date, 'YYYY-MM-DD') AS date, start_time, duration_minutes, price, status, note, created_on, updated_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (service_id, provider_id, customer_id, reference_code, date, start_time, duration_minutes, price, status, note, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		b.ServiceID, b.ProviderID, b.CustomerID, b.ReferenceCode, b.Date, b.StartTime,
		b.DurationMinutes, b.Price, b.Status, b.Note, time.Now(), time.Now(),
	).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.ServiceID, &b.ProviderID, &b.CustomerID, &b.ReferenceCode, &b.Date, &b.StartTime,
		&b.DurationMinutes, &b.Price, &b.Status, &b.Note, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, note=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, b.Status, b.Note, time.Now(), b.ID)
	return err
}

func (r *bookingRepository) ListByServiceAndDate(ctx context.Context, serviceID int32, date string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE service_id = $1 AND date = $2 AND status != 'CANCELLED' ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, serviceID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Booking, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings WHERE customer_id = $1`, customerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY date DESC, start_time DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, customerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}
	return bookings, count, nil
}

func (r *bookingRepository) ListByProvider(ctx context.Context, providerID int32, date string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE provider_id = $1 AND date = $2 ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, providerID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.ServiceID, &b.ProviderID, &b.CustomerID, &b.ReferenceCode, &b.Date, &b.StartTime,
			&b.DurationMinutes, &b.Price, &b.Status, &b.Note, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
