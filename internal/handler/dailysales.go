package handler

import (
	"net/http"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/apierror"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/service"

	"github.com/gin-gonic/gin"
)

type DailySalesHandler struct{ svc service.DailySaleService }

func NewDailySalesHandler(svc service.DailySaleService) *DailySalesHandler {
	return &DailySalesHandler{svc: svc}
}

// List godoc
// @Summary List daily sales
// @Tags dailysale
// @Produce json
// @Param employee_id query int false "Employee"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {object} apierror.Envelope{data=[]dto.DailySaleResponse}
// @Router /dailysale [get]
func (h *DailySalesHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Get GET /dailysale/:id
func (h *DailySalesHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Create POST /dailysale
func (h *DailySalesHandler) Create(c *gin.Context) {
	var req dto.CreateDailySaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// CreateMany POST /dailysales inserts all rows or none.
func (h *DailySalesHandler) CreateMany(c *gin.Context) {
	var req []dto.CreateDailySaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateMany(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// UpsertMany godoc
// @Summary Insert or overwrite daily sales by id
// @Description Rows are written independently; the response lists the outcome of every row.
// @Tags dailysale
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body []dto.UpsertDailySaleRequest true "Rows"
// @Success 200 {object} apierror.Envelope{data=[]dto.UpsertResult}
// @Failure 400 {object} apierror.Envelope{details=[]dto.UpsertResult}
// @Router /upsertsales [post]
func (h *DailySalesHandler) UpsertMany(c *gin.Context) {
	var req []dto.UpsertDailySaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	results, err := h.svc.UpsertMany(c.Request.Context(), req)
	respondUpsert(c, results, err)
}

// Update PUT /dailysale/:id
func (h *DailySalesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateDailySaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Delete DELETE /dailysale/:id
func (h *DailySalesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}

// respondUpsert reports every row; the first failed row decides the status.
func respondUpsert(c *gin.Context, results []dto.UpsertResult, err error) {
	if err != nil {
		_ = c.Error(err)
		c.JSON(statusOf(err), apierror.WithDetails(service.MessageOf(err), results))
		return
	}
	respond(c, http.StatusOK, results)
}
