package service

import (
	"context"
	"log/slog"

	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
	"github.com/ueberstunden/overtime-ledger/internal/ledger"
)

// TransactionServiceImpl implements the TransactionService interface
type TransactionServiceImpl struct {
	transactionRepo transaction.Repository
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(logger *slog.Logger, transactionRepo transaction.Repository) TransactionService {
	return &TransactionServiceImpl{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Create validates and persists a new transaction
func (s *TransactionServiceImpl) Create(ctx context.Context, input ledger.Input) (*transaction.Transaction, error) {
	record, err := ledger.Normalize(input)
	if err != nil {
		return nil, err
	}

	created, err := s.transactionRepo.Create(ctx, &transaction.Transaction{
		Date:        record.Date,
		Kind:        record.Kind,
		Minutes:     record.Minutes,
		Description: record.Description,
	})
	if err != nil {
		s.logger.Error("Failed to create transaction",
			"date", record.Date,
			"kind", string(record.Kind),
			"error", err,
		)
		return nil, err
	}

	s.logger.Info("Transaction created",
		"transaction_id", created.ID,
		"date", created.Date,
		"kind", string(created.Kind),
		"minutes", created.Minutes,
	)

	return created, nil
}

// List retrieves all transactions with their running balance attached
func (s *TransactionServiceImpl) List(ctx context.Context) ([]ledger.RunningEntry, error) {
	txs, err := s.transactionRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list transactions", "error", err)
		return nil, err
	}
	return ledger.WithRunningBalance(txs), nil
}

// Balance returns the current total balance in minutes
func (s *TransactionServiceImpl) Balance(ctx context.Context) (int, error) {
	txs, err := s.transactionRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load transactions for balance", "error", err)
		return 0, err
	}
	return ledger.TotalBalance(txs), nil
}

// Update applies a partial update to an existing transaction. The merged
// result passes through the same validation as a create, so a patch can
// never leave a stored transaction in a state a create would reject.
func (s *TransactionServiceImpl) Update(ctx context.Context, id string, patch TransactionPatch) (*transaction.Transaction, error) {
	existing, err := s.transactionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	minutes := existing.Minutes
	input := ledger.Input{
		Date:        existing.Date,
		Kind:        string(existing.Kind),
		Minutes:     &minutes,
		Description: existing.Description,
	}

	if patch.Date != nil {
		input.Date = *patch.Date
	}
	if patch.Kind != nil {
		input.Kind = *patch.Kind
	}
	if patch.Description != nil {
		input.Description = *patch.Description
	}
	if patch.Minutes != nil {
		input.Minutes = patch.Minutes
		input.Hours = nil
	} else if patch.Hours != nil {
		input.Minutes = nil
		input.Hours = patch.Hours
	}

	record, err := ledger.Normalize(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.transactionRepo.Update(ctx, id, &transaction.Transaction{
		Date:        record.Date,
		Kind:        record.Kind,
		Minutes:     record.Minutes,
		Description: record.Description,
	})
	if err != nil {
		s.logger.Error("Failed to update transaction", "transaction_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("Transaction updated", "transaction_id", id)
	return updated, nil
}

// Delete removes a transaction by ID
func (s *TransactionServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Transaction deleted", "transaction_id", id)
	return nil
}

// Export renders the CSV export for the given date window. The running
// balance is computed over the full ledger before the window filter applies.
func (s *TransactionServiceImpl) Export(ctx context.Context, window ledger.ExportRange) (string, error) {
	txs, err := s.transactionRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load transactions for export", "error", err)
		return "", err
	}
	return ledger.RenderExport(txs, window), nil
}
