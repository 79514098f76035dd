package service

import (
	"context"

	"github.com/okovalenko/savings-tracker/internal/storage"
)

// ReportService derives statistics and the balance ledger. Every call
// re-reads the full transaction set so derived views are never stale
// across a mutation.
type ReportService struct {
	storage *storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

// Stats computes the aggregate statistics over all transactions.
func (s *ReportService) Stats(ctx context.Context) (*Stats, error) {
	rows, err := s.storage.Transactions.All(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeStats(fromStorageAll(rows)), nil
}

// BalanceLedger computes the per-date balance entries in the requested
// presentation order.
func (s *ReportService) BalanceLedger(ctx context.Context, order SortOrder) ([]BalanceEntry, error) {
	rows, err := s.storage.Transactions.All(ctx)
	if err != nil {
		return nil, err
	}
	return BuildBalanceLedger(fromStorageAll(rows), order), nil
}
