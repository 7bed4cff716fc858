package http

import (
	"net/http"

	"othello/internal/config"
	"othello/internal/game"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// GetSearchHandler returns the engine settings
// @Summary Get search settings
// @Description Returns depth limits and the static evaluation weights
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/search [get]
func (h *ConfigHandler) GetSearchHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"search":       h.cfg.Search,
		"weights":      game.Weights(),
		"parityWeight": game.ParityWeight,
	})
}
