package handler

import (
	"net/http"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/service"

	"github.com/gin-gonic/gin"
)

type MistakesHandler struct{ svc service.MistakeService }

func NewMistakesHandler(svc service.MistakeService) *MistakesHandler {
	return &MistakesHandler{svc: svc}
}

// List GET /mistake?employee_id=&from=&to=
func (h *MistakesHandler) List(c *gin.Context) {
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

func (h *MistakesHandler) Get(c *gin.Context) {
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

func (h *MistakesHandler) Create(c *gin.Context) {
	var req dto.CreateMistakeRequest
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

func (h *MistakesHandler) CreateMany(c *gin.Context) {
	var req []dto.CreateMistakeRequest
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

// UpsertMany POST /upsertmistakes
func (h *MistakesHandler) UpsertMany(c *gin.Context) {
	var req []dto.UpsertMistakeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	results, err := h.svc.UpsertMany(c.Request.Context(), req)
	respondUpsert(c, results, err)
}

func (h *MistakesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMistakeRequest
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

func (h *MistakesHandler) Delete(c *gin.Context) {
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
