package postgres

import (
	"context"
	"database/sql"
	"time"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateEntry(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (provider_id, type, reservation_id, booking_id, gross_amount, platform_fee, net_amount, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.ProviderID, e.Type, e.ReservationID, e.BookingID, e.GrossAmount, e.PlatformFee, e.NetAmount, e.Description, time.Now()).Scan(&e.ID)
}

func (r *ledgerRepository) ListByProvider(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM ledger_entries WHERE provider_id = $1`, providerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, provider_id, type, reservation_id, booking_id, gross_amount, platform_fee, net_amount, description, created_on
	          FROM ledger_entries WHERE provider_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, providerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.ProviderID, &e.Type, &e.ReservationID, &e.BookingID, &e.GrossAmount, &e.PlatformFee, &e.NetAmount, &e.Description, &e.CreatedOn); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, count, rows.Err()
}

func (r *ledgerRepository) GetSummary(ctx context.Context, providerID int32) (*domain.LedgerSummary, error) {
	s := &domain.LedgerSummary{ProviderID: providerID}
	query := `SELECT coalesce(sum(gross_amount), 0), coalesce(sum(platform_fee), 0), coalesce(sum(net_amount), 0), count(*)
	          FROM ledger_entries WHERE provider_id = $1`
	err := r.db.QueryRowContext(ctx, query, providerID).Scan(&s.TotalGross, &s.TotalPlatformFee, &s.TotalNet, &s.EntryCount)
	if err != nil {
		return nil, err
	}
	return s, nil
}
