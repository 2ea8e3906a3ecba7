package postgres

import (
	"context"
	"database/sql"
	"time"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
)

type serviceRepository struct {
	db *sql.DB
}

func NewServiceRepository(db *sql.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	query := `INSERT INTO services (provider_id, name, description, duration_minutes, price, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, svc.ProviderID, svc.Name, svc.Description, svc.DurationMinutes, svc.Price, svc.Active, time.Now()).Scan(&svc.ID)
}

func (r *serviceRepository) GetByID(ctx context.Context, id int32) (*domain.Service, error) {
	svc := &domain.Service{}
	query := `SELECT id, provider_id, name, description, duration_minutes, price, active, created_on FROM services WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&svc.ID, &svc.ProviderID, &svc.Name, &svc.Description, &svc.DurationMinutes, &svc.Price, &svc.Active, &svc.CreatedOn)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.Service) error {
	query := `UPDATE services SET name=$1, description=$2, duration_minutes=$3, price=$4, active=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, svc.Name, svc.Description, svc.DurationMinutes, svc.Price, svc.Active, svc.ID)
	return err
}

func (r *serviceRepository) ListByProvider(ctx context.Context, providerID int32) ([]domain.Service, error) {
	query := `SELECT id, provider_id, name, description, duration_minutes, price, active, created_on FROM services WHERE provider_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.ProviderID, &svc.Name, &svc.Description, &svc.DurationMinutes, &svc.Price, &svc.Active, &svc.CreatedOn); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}
