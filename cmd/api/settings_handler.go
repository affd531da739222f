package api

import (
	"net/http"

	"planner-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the AI provider selection. The values come from
// configuration at startup and cannot be changed at runtime.
type SettingsHandler struct {
	info ai.Info
}

func NewSettingsHandler(cfg ai.Config) *SettingsHandler {
	return &SettingsHandler{info: ai.Describe(cfg)}
}

// GetAISettings returns the configured provider and model
// GET /api/settings/ai
func (h *SettingsHandler) GetAISettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}
