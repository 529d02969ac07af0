package http

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rstracker/fete-cms/internal/domain"
	"github.com/rstracker/fete-cms/internal/forms"
)

type choiceRequest struct {
	ChoiceText        string  `json:"choiceText"`
	ChoiceValue       string  `json:"choiceValue"`
	Order             int     `json:"order"`
	TemperatureWeight float64 `json:"temperatureWeight"`
}

type questionRequest struct {
	QuestionText     string          `json:"questionText"`
	QuestionType     string          `json:"questionType"`
	QuestionCategory string          `json:"questionCategory"`
	Order            int             `json:"order"`
	IsActive         *bool           `json:"isActive"`
	Choices          []choiceRequest `json:"choices"`
}

// applyQuestionRequest copies the request body into the modal's form,
// keeping choice order a dense 1..N sequence like the in-modal edits do.
func applyQuestionRequest(f *forms.QuestionForm, req questionRequest) {
	f.QuestionText = req.QuestionText
	f.QuestionType = req.QuestionType
	if req.QuestionCategory != "" {
		f.QuestionCategory = domain.QuestionCategory(req.QuestionCategory)
	}
	if req.Order > 0 {
		f.Order = req.Order
	}
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}
	if req.Choices != nil {
		choices := make([]forms.ChoiceField, len(req.Choices))
		for i, c := range req.Choices {
			order := c.Order
			if order <= 0 {
				order = i + 1
			}
			choices[i] = forms.ChoiceField{
				ChoiceText:        c.ChoiceText,
				ChoiceValue:       c.ChoiceValue,
				Order:             order,
				TemperatureWeight: c.TemperatureWeight,
			}
		}
		sort.SliceStable(choices, func(i, j int) bool { return choices[i].Order < choices[j].Order })
		for i := range choices {
			choices[i].Order = i + 1
		}
		f.Choices = choices
	}
}

func (h *PagesHandler) questionsView() gin.H {
	p := h.questions
	view := gin.H{
		"state":     p.State.String(),
		"category":  p.Category,
		"questions": p.Questions,
		"error":     p.Err,
	}
	if p.Selected != nil {
		view["selected"] = p.Selected
	}
	if p.Modal != nil {
		view["modal"] = gin.H{"saving": p.Modal.Saving, "error": p.Modal.Err}
	}
	return view
}

func (h *PagesHandler) GetQuestions(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if category, ok := c.GetQuery("category"); ok {
		_ = h.questions.SetCategory(c.Request.Context(), domain.QuestionCategory(category))
	} else {
		_ = h.questions.Load(c.Request.Context())
	}
	// Load failures render as the page's error state, not an HTTP error.
	c.JSON(http.StatusOK, h.questionsView())
}

func (h *PagesHandler) GetQuestionDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid question id"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.questions.ViewDetail(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "question": h.questions.Selected})
}

func (h *PagesHandler) CreateQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	modal := h.questions.OpenCreate()
	applyQuestionRequest(modal.Form, req)
	if err := modal.Submit(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "questions": h.questions.Questions})
}

func (h *PagesHandler) UpdateQuestion(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid question id"})
		return
	}
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	modal, err := h.questions.OpenEdit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	applyQuestionRequest(modal.Form, req)
	if err := modal.Submit(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "questions": h.questions.Questions})
}

func (h *PagesHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid question id"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.questions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "questions": h.questions.Questions})
}
