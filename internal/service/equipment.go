package service

import (
	"context"
	"fmt"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

func (s *equipmentService) AddEquipment(ctx context.Context, eq *domain.Equipment) error {
	if err := validateEquipment(eq); err != nil {
		return err
	}
	if eq.Status == "" {
		eq.Status = domain.EquipmentStatusListed
	}
	return s.equipmentRepo.Create(ctx, eq)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, eq *domain.Equipment) error {
	if err := validateEquipment(eq); err != nil {
		return err
	}
	current, err := s.equipmentRepo.GetByID(ctx, eq.ID)
	if err != nil {
		return err
	}
	if current.ProviderID != eq.ProviderID {
		return ErrUnauthorized
	}
	return s.equipmentRepo.Update(ctx, eq)
}

func (s *equipmentService) RemoveEquipment(ctx context.Context, providerID, equipmentID int32) error {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return err
	}
	if eq.ProviderID != providerID {
		return ErrUnauthorized
	}
	return s.equipmentRepo.Delete(ctx, equipmentID)
}

func (s *equipmentService) ListByProvider(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.Equipment, int32, error) {
	return s.equipmentRepo.ListByProvider(ctx, providerID, page, pageSize)
}

func (s *equipmentService) Search(ctx context.Context, query, category string, maxDailyRate float64, page, pageSize int32) ([]domain.Equipment, int32, error) {
	return s.equipmentRepo.Search(ctx, query, category, maxDailyRate, page, pageSize)
}

func validateEquipment(eq *domain.Equipment) error {
	if eq.Name == "" {
		return fmt.Errorf("equipment name is required")
	}
	if eq.DailyRate < 0 {
		return fmt.Errorf("daily rate cannot be negative")
	}
	if eq.DepositAmount < 0 {
		return fmt.Errorf("deposit amount cannot be negative")
	}
	return nil
}
