package handler

import (
	"net/http"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/apierror"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesGoalsHandler struct{ svc service.SalesGoalService }

func NewSalesGoalsHandler(svc service.SalesGoalService) *SalesGoalsHandler {
	return &SalesGoalsHandler{svc: svc}
}

// parseSaleDate reads the :saledate path parameter.
func parseSaleDate(c *gin.Context) (time.Time, bool) {
	d, err := dto.ParseDate(c.Param("saledate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.WithDetails(apierror.InvalidData, gin.H{"saledate": "date"}))
		return time.Time{}, false
	}
	return d, true
}

// List GET /salesgoal?from=&to=
func (h *SalesGoalsHandler) List(c *gin.Context) {
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

// Get godoc
// @Summary Get the goal of a date
// @Tags salesgoal
// @Produce json
// @Param saledate path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} apierror.Envelope{data=dto.SalesGoalResponse}
// @Failure 404 {object} apierror.APIError
// @Router /salesgoal/{saledate} [get]
func (h *SalesGoalsHandler) Get(c *gin.Context) {
	date, ok := parseSaleDate(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

func (h *SalesGoalsHandler) Create(c *gin.Context) {
	var req dto.CreateSalesGoalRequest
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

// CreateMany POST /salesgoals
func (h *SalesGoalsHandler) CreateMany(c *gin.Context) {
	var req []dto.CreateSalesGoalRequest
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

func (h *SalesGoalsHandler) Update(c *gin.Context) {
	date, ok := parseSaleDate(c)
	if !ok {
		return
	}
	var req dto.UpdateSalesGoalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), date, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

func (h *SalesGoalsHandler) Delete(c *gin.Context) {
	date, ok := parseSaleDate(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), date); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"date": dto.NewDate(date)})
}
