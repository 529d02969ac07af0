package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rstracker/fete-cms/internal/domain"
	"github.com/rstracker/fete-cms/internal/forms"
	"github.com/rstracker/fete-cms/internal/ui"
)

type userRequest struct {
	Userid      string `json:"userid"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Name        string `json:"name"`
	BirthDate   string `json:"birthDate"`
	Gender      string `json:"gender"`
	Status      string `json:"status"`
}

func applyUserRequest(f *forms.UserForm, req userRequest) {
	if !f.Editing() {
		f.Userid = req.Userid
		f.PhoneNumber = req.PhoneNumber
	}
	f.Email = req.Email
	f.Name = req.Name
	f.BirthDate = req.BirthDate
	if req.Gender != "" {
		f.Gender = domain.Gender(req.Gender)
	}
	if req.Status != "" {
		f.Status = domain.UserStatus(req.Status)
	}
}

func (h *PagesHandler) usersView() gin.H {
	p := h.users
	rows := p.Filtered()
	badges := make([]gin.H, len(rows))
	for i, u := range rows {
		badges[i] = gin.H{
			"id":           u.ID,
			"status":       ui.UserStatusBadge(u.Status),
			"verification": ui.VerificationBadge(u.VerificationStatus),
		}
	}
	view := gin.H{
		"state":         p.State.String(),
		"users":         rows,
		"badges":        badges,
		"page":          p.Page,
		"pageSize":      p.PageSize,
		"totalElements": p.TotalElements,
		"totalPages":    p.TotalPages,
		"search":        p.Search,
		"statusFilter":  p.StatusFilter,
		"error":         p.Err,
	}
	if p.Modal != nil {
		view["modal"] = gin.H{"saving": p.Modal.Saving, "error": p.Modal.Err}
	}
	return view
}

func (h *PagesHandler) GetUsers(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Search and status narrow the fetched page locally; only the page
	// number reaches the backend.
	h.users.SetSearch(c.Query("search"))
	h.users.SetStatusFilter(domain.UserStatus(c.Query("status")))

	page := h.users.Page
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	_ = h.users.SetPage(c.Request.Context(), page)
	c.JSON(http.StatusOK, h.usersView())
}

func (h *PagesHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	modal := h.users.OpenCreate()
	applyUserRequest(modal.Form, req)
	if err := modal.Submit(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "users": h.users.Users})
}

func (h *PagesHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid user id"})
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	modal, err := h.users.OpenEditByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	applyUserRequest(modal.Form, req)
	if err := modal.Submit(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "users": h.users.Users})
}

func (h *PagesHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid user id"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "users": h.users.Users})
}

func (h *PagesHandler) GetUserHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid user id"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	detail, err := h.users.OpenDetailByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	// The snapshot is the whole render; no view-state lingers between calls.
	defer detail.Close()

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"user":    detail.User,
		"history": detail.History,
	})
}
