package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/ueberstunden/overtime-ledger/internal/httpapi/service"
)

// SettingsHandler handles HTTP requests for application settings
type SettingsHandler struct {
	settingsService service.SettingsService
	logger          *slog.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(logger *slog.Logger, settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// Get returns the current settings
func (h *SettingsHandler) Get(c *gin.Context) {
	current, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load settings", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapSettingsToPayload(current))
}

// Put validates and persists new settings
func (h *SettingsHandler) Put(c *gin.Context) {
	var payload SettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	next := mapPayloadToSettings(payload)
	if err := next.Validate(); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}

	if err := h.settingsService.Update(c.Request.Context(), &next); err != nil {
		h.logger.Error("Failed to save settings", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapSettingsToPayload(&next))
}
