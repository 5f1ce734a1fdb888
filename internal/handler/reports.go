package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Sales godoc
// @Summary Daily sales against goals
// @Tags report
// @Produce json
// @Security BearerAuth
// @Param employee_id query int false "Employee"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {object} apierror.Envelope{data=dto.ReportResponse}
// @Router /report [get]
func (h *ReportsHandler) Sales(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.Build(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// SalesPDF GET /report/pdf renders the same report as a PDF attachment.
func (h *ReportsHandler) SalesPDF(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	out, err := h.svc.PDF(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	name := fmt.Sprintf("sales_report_%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
