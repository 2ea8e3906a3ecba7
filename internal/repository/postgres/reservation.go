package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

// Calendar dates come back through to_char so they scan straight into the
// domain's yyyy-mm-dd strings.
const reservationColumns = `id, equipment_id, provider_id, renter_id, to_char(start_date, 'YYYY-MM-DD') AS start_date, to_char(end_date, 'YYYY-MM-DD') AS end_date, daily_rate, total_days, subtotal, platform_fee, deposit_amount, total_due, status, pickup_note, rejection_reason, created_on, updated_on`

// exclusionViolation is the pq error code raised by the reservations
// EXCLUDE constraint when two active reservations would overlap.
const exclusionViolation = "23P01"

func (r *reservationRepository) Create(ctx context.Context, rt *domain.Reservation) error {
	query := `INSERT INTO reservations (equipment_id, provider_id, renter_id, start_date, end_date, daily_rate, total_days, subtotal, platform_fee, deposit_amount, total_due, status, pickup_note, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		rt.EquipmentID, rt.ProviderID, rt.RenterID, rt.StartDate, rt.EndDate,
		rt.DailyRate, rt.TotalDays, rt.Subtotal, rt.PlatformFee, rt.DepositAmount, rt.TotalDue,
		rt.Status, rt.PickupNote, time.Now(), time.Now(),
	).Scan(&rt.ID)
	return mapConflict(err)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rt := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.EquipmentID, &rt.ProviderID, &rt.RenterID, &rt.StartDate, &rt.EndDate,
		&rt.DailyRate, &rt.TotalDays, &rt.Subtotal, &rt.PlatformFee, &rt.DepositAmount, &rt.TotalDue,
		&rt.Status, &rt.PickupNote, &rt.RejectionReason, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *reservationRepository) Update(ctx context.Context, rt *domain.Reservation) error {
	query := `UPDATE reservations SET status=$1, pickup_note=$2, rejection_reason=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.PickupNote, rt.RejectionReason, time.Now(), rt.ID)
	return err
}

// UpdateDates rewrites the date range and quote snapshot of an existing
// reservation. The exclusion constraint still applies, so a racing edit
// surfaces as ErrDatesConflict just like a racing create.
func (r *reservationRepository) UpdateDates(ctx context.Context, rt *domain.Reservation) error {
	query := `UPDATE reservations SET start_date=$1, end_date=$2, total_days=$3, subtotal=$4, platform_fee=$5, total_due=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, rt.StartDate, rt.EndDate, rt.TotalDays, rt.Subtotal, rt.PlatformFee, rt.TotalDue, time.Now(), rt.ID)
	return mapConflict(err)
}

func (r *reservationRepository) ListActiveByEquipment(ctx context.Context, equipmentID int32) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE equipment_id = $1 AND status IN ('PENDING', 'ACTIVE') ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return r.list(ctx, "renter_id", renterID, status, page, pageSize)
}

func (r *reservationRepository) ListByProvider(ctx context.Context, providerID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return r.list(ctx, "provider_id", providerID, status, page, pageSize)
}

func (r *reservationRepository) list(ctx context.Context, column string, id int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE ` + column + ` = $1`

	args := []interface{}{id}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, 0, err
	}
	return reservations, count, nil
}

func (r *reservationRepository) ListActiveEndingOn(ctx context.Context, date string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = 'ACTIVE' AND end_date = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) MarkOverdue(ctx context.Context, asOf string) (int64, error) {
	query := `UPDATE reservations SET status = 'OVERDUE', updated_on = $1 WHERE status = 'ACTIVE' AND end_date < $2`
	res, err := r.db.ExecContext(ctx, query, time.Now(), asOf)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *reservationRepository) ExpirePending(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE reservations SET status = 'CANCELLED', rejection_reason = 'expired without provider response', updated_on = $1 WHERE status = 'PENDING' AND created_on < $2`
	res, err := r.db.ExecContext(ctx, query, time.Now(), cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		var rt domain.Reservation
		if err := rows.Scan(
			&rt.ID, &rt.EquipmentID, &rt.ProviderID, &rt.RenterID, &rt.StartDate, &rt.EndDate,
			&rt.DailyRate, &rt.TotalDays, &rt.Subtotal, &rt.PlatformFee, &rt.DepositAmount, &rt.TotalDue,
			&rt.Status, &rt.PickupNote, &rt.RejectionReason, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		reservations = append(reservations, rt)
	}
	return reservations, rows.Err()
}

func mapConflict(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == exclusionViolation {
		return repository.ErrDatesConflict
	}
	return err
}
