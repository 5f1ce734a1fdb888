package handler

import (
	"net/http"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/middleware"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Signup godoc
// @Summary Register the first password of an administrative employee
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.CredentialsRequest true "CPF and password"
// @Success 201 {object} apierror.Envelope{data=dto.SignupResponse}
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// Login godoc
// @Summary Exchange CPF and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.CredentialsRequest true "CPF and password"
// @Success 200 {object} apierror.Envelope{data=dto.TokenResponse}
// @Failure 401 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Logout POST /logout revokes the bearer token of the request.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Get(middleware.TokenKey)
	tok, _ := token.(string)
	if err := h.svc.Logout(c.Request.Context(), tok); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"logged_out": true})
}
