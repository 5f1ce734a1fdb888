package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CredentialsRequest is the body of both /signup and /login.
type CredentialsRequest struct {
	CPF      CPF    `json:"cpf"      validate:"required,cpf"`
	Password string `json:"password" validate:"required,password"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TokenResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type SignupResponse struct {
	Employee EmployeeResponse `json:"employee"`
	TokenResponse
}
