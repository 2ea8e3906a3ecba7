package service

import (
	"context"

	"seatsafe-backend/internal/domain"
	"seatsafe-backend/internal/repository"
)

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
}

func NewLedgerService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) ListEntries(ctx context.Context, providerID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	return s.ledgerRepo.ListByProvider(ctx, providerID, page, pageSize)
}

func (s *ledgerService) GetSummary(ctx context.Context, providerID int32) (*domain.LedgerSummary, error) {
	return s.ledgerRepo.GetSummary(ctx, providerID)
}
