package http

import (
	"net/http"

	"checkers-server/internal/config"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

type configResponse struct {
	RoomTTL        string   `json:"roomTtl"`
	SweepInterval  string   `json:"sweepInterval"`
	AllowedOrigins []string `json:"allowedOrigins"`
	LogLevel       string   `json:"logLevel"`
}

// GetConfigHandler returns the settings the server is running with
// @Summary Get effective configuration
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config [get]
func (h *ConfigHandler) GetConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, configResponse{
		RoomTTL:        h.cfg.RoomTTL.String(),
		SweepInterval:  h.cfg.SweepInterval.String(),
		AllowedOrigins: h.cfg.AllowedOrigins,
		LogLevel:       h.cfg.LogLevel,
	})
}
