package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, provider_id, name, description, category, condition, daily_rate, deposit_amount, to_char(expiration_date, 'YYYY-MM-DD') AS expiration_date, status, created_on, deleted_on`

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (provider_id, name, description, category, condition, daily_rate, deposit_amount, expiration_date, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, eq.ProviderID, eq.Name, eq.Description, eq.Category, eq.Condition, eq.DailyRate, eq.DepositAmount, eq.ExpirationDate, eq.Status, time.Now()).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&eq.ID, &eq.ProviderID, &eq.Name, &eq.Description, &eq.Category, &eq.Condition, &eq.DailyRate, &eq.DepositAmount, &eq.ExpirationDate, &eq.Status, &eq.CreatedOn, &eq.DeletedOn)
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, description=$2, category=$3, condition=$4, daily_rate=$5, deposit_amount=$6, expiration_date=$7, status=$8 WHERE id=$9 AND deleted_on IS NULL`
	_, err := r.db.ExecContext(ctx, query, eq.Name, eq.Description, eq.Category, eq.Condition, eq.DailyRate, eq.DepositAmount, eq.ExpirationDate, eq.Status, eq.ID)
	return err
}

func (r *equipmentRepository) Delete(ctx context.Context, id int32) error {
	// Soft delete so historical reservations keep their reference.
	query := `UPDATE equipment SET deleted_on=$1, status=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, time.Now(), domain.EquipmentStatusUnlisted, id)
	return err
}

func (r *equipmentRepository) ListByProvider(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.Equipment, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM equipment WHERE provider_id = $1 AND deleted_on IS NULL`, providerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE provider_id = $1 AND deleted_on IS NULL ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, providerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := scanEquipment(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *equipmentRepository) Search(ctx context.Context, query string, category string, maxDailyRate float64, page, pageSize int32) ([]domain.Equipment, int32, error) {
	where := ` WHERE deleted_on IS NULL AND status = 'LISTED'`
	args := []interface{}{}
	argIdx := 1
	if query != "" {
		where += fmt.Sprintf(" AND (name ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", argIdx, argIdx)
		args = append(args, query)
		argIdx++
	}
	if category != "" {
		where += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}
	if maxDailyRate > 0 {
		where += fmt.Sprintf(" AND daily_rate <= $%d", argIdx)
		args = append(args, maxDailyRate)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM equipment`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	sqlQuery := `SELECT ` + equipmentColumns + ` FROM equipment` + where +
		fmt.Sprintf(" ORDER BY daily_rate LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := scanEquipment(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func scanEquipment(rows *sql.Rows) ([]domain.Equipment, error) {
	var items []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.ProviderID, &eq.Name, &eq.Description, &eq.Category, &eq.Condition, &eq.DailyRate, &eq.DepositAmount, &eq.ExpirationDate, &eq.Status, &eq.CreatedOn, &eq.DeletedOn); err != nil {
			return nil, err
		}
		items = append(items, eq)
	}
	return items, rows.Err()
}
