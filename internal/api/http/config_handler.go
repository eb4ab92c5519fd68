package http

import (
	"net/http"

	"quoridor/internal/config"
	"quoridor/internal/game"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// GetConfigHandler returns the service settings and board rules
// @Summary Service configuration
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config [get]
func (h *ConfigHandler) GetConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"botName":  h.cfg.BotName,
		"maxRooms": h.cfg.MaxRooms,
		"rules": gin.H{
			"boardSize":  game.BoardSize,
			"maxWalls":   game.MaxWalls,
			"totalWalls": game.TotalWalls,
		},
	})
}

// Healthz
// @Summary Liveness probe
// @Tags Config
// @Success 200 {object} map[string]interface{}
// @Router /healthz [get]
func (h *ConfigHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
