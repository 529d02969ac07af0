package http

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/rstracker/fete-cms/internal/backend"
	"github.com/rstracker/fete-cms/internal/forms"
	"github.com/rstracker/fete-cms/internal/pages"
)

// PagesHandler exposes the page containers over HTTP. The containers are
// plain view-state structs, not concurrent data structures, so a single
// mutex serializes every handler the way the browser event loop would.
type PagesHandler struct {
	mu sync.Mutex

	dashboard *pages.DashboardPage
	questions *pages.QuestionsPage
	users     *pages.UsersPage
	records   *pages.RecordsPage
}

func NewPagesHandler(dashboard *pages.DashboardPage, questions *pages.QuestionsPage, users *pages.UsersPage, records *pages.RecordsPage) *PagesHandler {
	return &PagesHandler{
		dashboard: dashboard,
		questions: questions,
		users:     users,
		records:   records,
	}
}

func (h *PagesHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/pages/dashboard", h.GetDashboard)
	r.GET("/pages/questions", h.GetQuestions)
	r.GET("/pages/users", h.GetUsers)
	r.GET("/pages/records", h.GetRecords)

	r.GET("/questions/:id", h.GetQuestionDetail)
	r.POST("/questions", h.CreateQuestion)
	r.PUT("/questions/:id", h.UpdateQuestion)
	r.DELETE("/questions/:id", h.DeleteQuestion)

	r.POST("/users", h.CreateUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
	r.GET("/users/:id/history", h.GetUserHistory)

	r.GET("/records/:recordId", h.GetRecordDetail)
	r.PUT("/records/:recordId/deactivate", h.DeactivateRecord)
}

// respondError maps the two error families onto HTTP: form validation comes
// back as 400 with the field list, a backend rejection keeps its original
// status, anything else is a gateway failure.
func respondError(c *gin.Context, err error) {
	var vErr *forms.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":     false,
			"error":  vErr.Error(),
			"fields": vErr.Fields,
		})
		return
	}
	if apiErr, ok := backend.AsAPIError(err); ok && apiErr.StatusCode >= 400 {
		c.JSON(apiErr.StatusCode, gin.H{
			"ok":    false,
			"error": backend.Message(err, "backend request failed"),
		})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
}
