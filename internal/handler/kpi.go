package handler

import (
	"bytes"
	"net/http"
	"time"

	"bfbsupply/internal/infra"
	"bfbsupply/internal/service"

	"github.com/gin-gonic/gin"
)

type KPIHandler struct {
	svc service.KPIService
	now func() time.Time
}

func NewKPIHandler(svc service.KPIService, now func() time.Time) *KPIHandler {
	return &KPIHandler{svc: svc, now: now}
}

func (h *KPIHandler) Get(c *gin.Context) {
	resp, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report renders the same snapshot as a one-page PDF.
func (h *KPIHandler) Report(c *gin.Context) {
	resp, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		writeError(c, err, "")
		return
	}
	var buf bytes.Buffer
	if err := infra.RenderKPIReport(&buf, resp, h.now()); err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="kpi-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
