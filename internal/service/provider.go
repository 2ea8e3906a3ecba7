package service

import (
	"context"
	"errors"
	"fmt"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/logger"
	"seatsafe-backend/internal/repository"
	"seatsafe-backend/internal/schedule"
)

var ErrInvalidHours = errors.New("operating hours are invalid")

type providerService struct {
	providerRepo repository.ProviderRepository
	serviceRepo  repository.ServiceRepository
	userRepo     repository.UserRepository
}

func NewProviderService(providerRepo repository.ProviderRepository, serviceRepo repository.ServiceRepository, userRepo repository.UserRepository) ProviderService {
	return &providerService{providerRepo: providerRepo, serviceRepo: serviceRepo, userRepo: userRepo}
}

func (s *providerService) CreateProvider(ctx context.Context, ownerUserID int32, p *domain.Provider) error {
	if p.Tier == "" {
		p.Tier = domain.TierFree
	}
	if err := validateHours(p.Hours); err != nil {
		return err
	}
	if err := s.providerRepo.Create(ctx, p); err != nil {
		return err
	}

	// Promote the creating user to provider admin so subsequent requests
	// carry the provider id in their token.
	owner, err := s.userRepo.GetByID(ctx, ownerUserID)
	if err != nil {
		return err
	}
	owner.Role = domain.UserRoleProviderAdmin
	owner.ProviderID = &p.ID
	if err := s.userRepo.Update(ctx, owner); err != nil {
		return err
	}

	logger.InfoContext(ctx, "provider created", "provider_id", p.ID, "owner_user_id", ownerUserID)
	return nil
}

func (s *providerService) GetProvider(ctx context.Context, id int32) (*domain.Provider, error) {
	return s.providerRepo.GetByID(ctx, id)
}

func (s *providerService) ListProviders(ctx context.Context, page, pageSize int32) ([]domain.Provider, int32, error) {
	return s.providerRepo.List(ctx, page, pageSize)
}

func (s *providerService) SearchProviders(ctx context.Context, name, metro string) ([]domain.Provider, error) {
	return s.providerRepo.Search(ctx, name, metro)
}

func (s *providerService) UpdateProvider(ctx context.Context, p *domain.Provider) error {
	return s.providerRepo.Update(ctx, p)
}

func (s *providerService) UpdateHours(ctx context.Context, providerID int32, hours domain.WeekSchedule) error {
	if err := validateHours(hours); err != nil {
		return err
	}
	p, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return err
	}
	p.Hours = hours
	return s.providerRepo.Update(ctx, p)
}

func (s *providerService) UpdateTier(ctx context.Context, providerID int32, tier domain.SubscriptionTier) error {
	if err := s.providerRepo.UpdateTier(ctx, providerID, tier); err != nil {
		return err
	}
	logger.InfoContext(ctx, "provider tier updated", "provider_id", providerID, "tier", string(tier))
	return nil
}

func (s *providerService) ListServices(ctx context.Context, providerID int32) ([]domain.Service, error) {
	return s.serviceRepo.ListByProvider(ctx, providerID)
}

func (s *providerService) CreateService(ctx context.Context, svc *domain.Service) error {
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("service duration must be positive, got %d", svc.DurationMinutes)
	}
	if svc.Price < 0 {
		return fmt.Errorf("service price cannot be negative")
	}
	return s.serviceRepo.Create(ctx, svc)
}

func (s *providerService) UpdateService(ctx context.Context, svc *domain.Service) error {
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("service duration must be positive, got %d", svc.DurationMinutes)
	}
	current, err := s.serviceRepo.GetByID(ctx, svc.ID)
	if err != nil {
		return err
	}
	if current.ProviderID != svc.ProviderID {
		return ErrUnauthorized
	}
	return s.serviceRepo.Update(ctx, svc)
}

// validateHours rejects schedules with unparseable or inverted windows.
// Closed days and days missing from the map are fine.
func validateHours(hours domain.WeekSchedule) error {
	for day, h := range hours {
		if h.Closed {
			continue
		}
		open, err := schedule.ParseClock(h.Open)
		if err != nil {
			return fmt.Errorf("%w: %s open time %q", ErrInvalidHours, day, h.Open)
		}
		closeAt, err := schedule.ParseClock(h.Close)
		if err != nil {
			return fmt.Errorf("%w: %s close time %q", ErrInvalidHours, day, h.Close)
		}
		if closeAt <= open {
			return fmt.Errorf("%w: %s closes before it opens", ErrInvalidHours, day)
		}
	}
	return nil
}
