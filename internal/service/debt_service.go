package service

import (
	"context"

	"github.com/okovalenko/savings-tracker/internal/storage"
)

// DebtService derives per-counterparty debt groups.
type DebtService struct {
	storage *storage.Storage
}

// NewDebtService creates a new DebtService.
func NewDebtService(store *storage.Storage) *DebtService {
	return &DebtService{storage: store}
}

// DebtGroups reads the full transaction set and groups the debt-flagged
// transactions matching the filter by counterparty.
func (s *DebtService) DebtGroups(ctx context.Context, filter DebtFilter) ([]DebtGroup, error) {
	rows, err := s.storage.Transactions.All(ctx)
	if err != nil {
		return nil, err
	}
	return GroupDebts(fromStorageAll(rows), filter), nil
}
