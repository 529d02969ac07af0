package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rstracker/fete-cms/internal/ui"
)

func (h *PagesHandler) GetDashboard(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	_ = h.dashboard.Load(c.Request.Context())

	stats := h.dashboard.Stats
	cards := gin.H{
		"questionCount":  stats.QuestionCount,
		"userCount":      stats.UserCount,
		"recordCount":    stats.RecordCount,
		"avgTemperature": stats.AvgTemperature,
	}
	if stats.AvgTemperature != nil {
		cards["avgTemperatureLabel"] = ui.FormatTemperature(*stats.AvgTemperature)
	}
	if stats.ActiveMatchings != nil {
		cards["activeMatchings"] = stats.ActiveMatchings
	}

	c.JSON(http.StatusOK, gin.H{
		"state": h.dashboard.State.String(),
		"stats": cards,
		"nav":   ui.NavItems(),
		"error": h.dashboard.Err,
	})
}
