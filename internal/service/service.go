package service

import (
	"github.com/okovalenko/savings-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Report      *ReportService
	Debt        *DebtService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Report:      NewReportService(store),
		Debt:        NewDebtService(store),
	}
}
