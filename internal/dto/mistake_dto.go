package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateMistakeRequest struct {
	Date       *Date           `json:"date"        validate:"required"`
	Value      decimal.Decimal `json:"value"       validate:"required,min=1"`
	Reason     string          `json:"reason"      validate:"required,max=255"`
	Receipt    string          `json:"receipt"     validate:"required,max=100"`
	EmployeeID uint            `json:"employee_id" validate:"required"`
}

type UpsertMistakeRequest struct {
	ID         uint            `json:"id"          validate:"required"`
	Date       *Date           `json:"date"        validate:"required"`
	Value      decimal.Decimal `json:"value"       validate:"required,min=1"`
	Reason     string          `json:"reason"      validate:"required,max=255"`
	Receipt    string          `json:"receipt"     validate:"required,max=100"`
	EmployeeID uint            `json:"employee_id" validate:"required"`
}

type UpdateMistakeRequest struct {
	Date       *Date            `json:"date"`
	Value      *decimal.Decimal `json:"value"       validate:"omitempty,min=1"`
	Reason     *string          `json:"reason"      validate:"omitempty,max=255"`
	Receipt    *string          `json:"receipt"     validate:"omitempty,max=100"`
	EmployeeID *uint            `json:"employee_id" validate:"omitempty,min=1"`
}

type MistakeResponse struct {
	ID         uint            `json:"id"`
	Date       Date            `json:"date"`
	Value      decimal.Decimal `json:"value"`
	Reason     string          `json:"reason"`
	Receipt    string          `json:"receipt"`
	EmployeeID uint            `json:"employee_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
