package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
	"github.com/ueberstunden/overtime-ledger/internal/ledger"
)

// ImportServiceImpl implements the ImportService interface. Parsed rows are
// persisted through a shared worker pool so a large upload cannot spawn an
// unbounded number of store writes.
type ImportServiceImpl struct {
	transactionRepo transaction.Repository
	pool            *ants.Pool
	logger          *slog.Logger
}

// NewImportService creates a new import service backed by the given worker pool
func NewImportService(logger *slog.Logger, transactionRepo transaction.Repository, pool *ants.Pool) ImportService {
	return &ImportServiceImpl{
		transactionRepo: transactionRepo,
		pool:            pool,
		logger:          logger,
	}
}

// Import parses the CSV payload and persists every valid row. Parse failures
// and store failures are reported per row; neither aborts the batch.
func (s *ImportServiceImpl) Import(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	parsed, err := ledger.ParseImport(r)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		imported int
		rowErrs  = append([]ledger.RowError(nil), parsed.Errors...)
	)

	for _, row := range parsed.Rows {
		row := row
		wg.Add(1)

		submitErr := s.pool.Submit(func() {
			defer wg.Done()

			_, err := s.transactionRepo.Create(ctx, &transaction.Transaction{
				Date:        row.Record.Date,
				Kind:        row.Record.Kind,
				Minutes:     row.Record.Minutes,
				Description: row.Record.Description,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Error("Failed to persist imported row", "row", row.Row, "error", err)
				rowErrs = append(rowErrs, ledger.RowError{Row: row.Row, Reason: "failed to save row"})
				return
			}
			imported++
		})
		if submitErr != nil {
			wg.Done()
			s.logger.Error("Failed to submit import row to worker pool", "row", row.Row, "error", submitErr)
			mu.Lock()
			rowErrs = append(rowErrs, ledger.RowError{Row: row.Row, Reason: "failed to save row"})
			mu.Unlock()
		}
	}

	wg.Wait()

	sort.Slice(rowErrs, func(i, j int) bool { return rowErrs[i].Row < rowErrs[j].Row })

	s.logger.Info("CSV import finished",
		"imported", imported,
		"failed", len(rowErrs),
	)

	return &ImportSummary{Imported: imported, Errors: rowErrs}, nil
}
