package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
	"github.com/ueberstunden/overtime-ledger/internal/httpapi/service"
	"github.com/ueberstunden/overtime-ledger/internal/ledger"
)

// TransactionHandler handles HTTP requests for ledger transaction operations
type TransactionHandler struct {
	transactionService service.TransactionService
	importService      service.ImportService
	maxImportBytes     int64
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, transactionService service.TransactionService, importService service.ImportService, maxImportBytes int64) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		importService:      importService,
		maxImportBytes:     maxImportBytes,
		logger:             logger,
	}
}

// respondServiceError maps domain errors onto HTTP responses. Validation
// failures keep their ledger code so API and CSV import report identically.
func (h *TransactionHandler) respondServiceError(c *gin.Context, err error) {
	var validationErr *ledger.ValidationError
	if errors.As(err, &validationErr) {
		RespondWithError(c, http.StatusBadRequest, string(validationErr.Code), validationErr.Reason)
		return
	}

	var notFoundErr transaction.ErrTransactionNotFound
	if errors.As(err, &notFoundErr) {
		RespondNotFound(c, "Transaction not found")
		return
	}

	h.logger.Error("Transaction operation failed", "error", err)
	RespondInternalError(c)
}

// Create records a new transaction with a duration in minutes or decimal hours
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.transactionService.Create(c.Request.Context(), ledger.Input{
		Date:        req.Date,
		Kind:        req.Kind,
		Minutes:     req.Minutes,
		Hours:       req.Hours,
		Description: req.Description,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	RespondCreated(c, mapTransactionToResponse(created))
}

// List returns all transactions with their running balance
func (h *TransactionHandler) List(c *gin.Context) {
	entries, err := h.transactionService.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapRunningEntryToResponse(entry))
	}

	RespondOK(c, TransactionListResponse{Transactions: responses})
}

// Balance returns the current total balance
func (h *TransactionHandler) Balance(c *gin.Context) {
	minutes, err := h.transactionService.Balance(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	RespondOK(c, BalanceResponse{
		BalanceMinutes: minutes,
		BalanceHours:   ledger.HoursFromMinutes(minutes),
	})
}

// Update applies a partial update to a transaction, returns 404 if not found
func (h *TransactionHandler) Update(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.transactionService.Update(c.Request.Context(), c.Param("id"), service.TransactionPatch{
		Date:        req.Date,
		Kind:        req.Kind,
		Minutes:     req.Minutes,
		Hours:       req.Hours,
		Description: req.Description,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	RespondOK(c, mapTransactionToResponse(updated))
}

// Delete removes a transaction, returns 404 if not found
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.transactionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}

	RespondNoContent(c)
}

// Import ingests a CSV payload, persisting valid rows and reporting the rest
// per row
func (h *TransactionHandler) Import(c *gin.Context) {
	body := io.LimitReader(c.Request.Body, h.maxImportBytes)

	summary, err := h.importService.Import(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, ledger.ErrEmptyImport) {
			RespondWithError(c, http.StatusBadRequest, "EMPTY_IMPORT", "no data rows in import")
			return
		}
		h.logger.Error("CSV import failed", "error", err)
		RespondInternalError(c)
		return
	}

	errs := summary.Errors
	if errs == nil {
		errs = []ledger.RowError{}
	}
	RespondOK(c, ImportResponse{ImportedCount: summary.Imported, Errors: errs})
}

// Export streams the ledger as a CSV attachment, optionally narrowed to a
// date window via the start and end query parameters
func (h *TransactionHandler) Export(c *gin.Context) {
	window := ledger.ExportRange{
		Start: c.Query("start"),
		End:   c.Query("end"),
	}

	csv, err := h.transactionService.Export(c.Request.Context(), window)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ueberstunden.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
