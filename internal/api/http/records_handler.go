package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rstracker/fete-cms/internal/ui"
)

func (h *PagesHandler) recordsView() gin.H {
	p := h.records
	rows := make([]gin.H, len(p.Records))
	for i, r := range p.Records {
		rows[i] = gin.H{
			"record":           r,
			"temperatureLabel": ui.FormatTemperature(r.Temperature),
			"createdAtLabel":   ui.FormatDateTime(r.CreatedAt),
		}
	}
	view := gin.H{
		"state":    p.State.String(),
		"records":  rows,
		"pageInfo": p.PageInfo,
		"error":    p.Err,
	}
	if p.Selected != nil {
		view["selected"] = p.Selected
	}
	return view
}

func (h *PagesHandler) GetRecords(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f := &h.records.Filters
	f.MinTemp = queryFloat(c, "minTemp")
	f.MaxTemp = queryFloat(c, "maxTemp")
	f.IsActive = queryBool(c, "isActive")
	f.StartDate = c.Query("startDate")
	f.EndDate = c.Query("endDate")
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Page = &n
		}
	}

	_ = h.records.Load(c.Request.Context())
	c.JSON(http.StatusOK, h.recordsView())
}

func (h *PagesHandler) GetRecordDetail(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.records.ViewDetail(c.Request.Context(), c.Param("recordId")); err != nil {
		respondError(c, err)
		return
	}
	r := h.records.Selected
	c.JSON(http.StatusOK, gin.H{
		"ok":               true,
		"record":           r,
		"temperatureLabel": ui.FormatTemperature(r.Temperature),
	})
}

func (h *PagesHandler) DeactivateRecord(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.records.Deactivate(c.Request.Context(), c.Param("recordId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.recordsView())
}

func queryFloat(c *gin.Context, key string) *float64 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryBool(c *gin.Context, key string) *bool {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
