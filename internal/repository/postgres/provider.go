package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
)

type providerRepository struct {
	db *sql.DB
}

func NewProviderRepository(db *sql.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// Operating hours are stored as a jsonb column keyed by weekday name.

func (r *providerRepository) Create(ctx context.Context, p *domain.Provider) error {
	hours, err := json.Marshal(p.Hours)
	if err != nil {
		return fmt.Errorf("failed to encode operating hours: %w", err)
	}
	query := `INSERT INTO providers (name, description, address, metro, phone_number, email, tier, hours, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Address, p.Metro, p.PhoneNumber, p.Email, p.Tier, hours, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *providerRepository) GetByID(ctx context.Context, id int32) (*domain.Provider, error) {
	p := &domain.Provider{}
	var tier string
	var hours []byte
	query := `SELECT id, name, description, address, metro, phone_number, email, tier, hours, created_on, updated_on FROM providers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Address, &p.Metro, &p.PhoneNumber, &p.Email, &tier, &hours, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	p.Tier = domain.ParseTier(tier)
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &p.Hours); err != nil {
			return nil, fmt.Errorf("failed to decode operating hours: %w", err)
		}
	}
	return p, nil
}

func (r *providerRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Provider, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM providers`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, description, address, metro, phone_number, email, tier, hours, created_on, updated_on
	          FROM providers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	providers, err := scanProviders(rows)
	if err != nil {
		return nil, 0, err
	}
	return providers, count, nil
}

func (r *providerRepository) Search(ctx context.Context, name, metro string) ([]domain.Provider, error) {
	query := `SELECT id, name, description, address, metro, phone_number, email, tier, hours, created_on, updated_on
	          FROM providers WHERE ($1 = '' OR name ILIKE '%' || $1 || '%') AND ($2 = '' OR metro = $2) ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, name, metro)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProviders(rows)
}

func (r *providerRepository) Update(ctx context.Context, p *domain.Provider) error {
	hours, err := json.Marshal(p.Hours)
	if err != nil {
		return fmt.Errorf("failed to encode operating hours: %w", err)
	}
	query := `UPDATE providers SET name=$1, description=$2, address=$3, metro=$4, phone_number=$5, email=$6, hours=$7, updated_on=$8 WHERE id=$9`
	_, err = r.db.ExecContext(ctx, query, p.Name, p.Description, p.Address, p.Metro, p.PhoneNumber, p.Email, hours, time.Now(), p.ID)
	return err
}

func (r *providerRepository) UpdateTier(ctx context.Context, id int32, tier domain.SubscriptionTier) error {
	query := `UPDATE providers SET tier=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, tier, time.Now(), id)
	return err
}

func scanProviders(rows *sql.Rows) ([]domain.Provider, error) {
	var providers []domain.Provider
	for rows.Next() {
		var p domain.Provider
		var tier string
		var hours []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Address, &p.Metro, &p.PhoneNumber, &p.Email, &tier, &hours, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		p.Tier = domain.ParseTier(tier)
		if len(hours) > 0 {
			if err := json.Unmarshal(hours, &p.Hours); err != nil {
				return nil, fmt.Errorf("failed to decode operating hours: %w", err)
			}
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}
