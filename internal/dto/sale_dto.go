package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateDailySaleRequest is one row of POST /dailysale and POST /dailysales.
// Ratios are pointers so an explicit 0 is distinguishable from a missing field.
type CreateDailySaleRequest struct {
	Date        *Date           `json:"date"        validate:"required"`
	Value       decimal.Decimal `json:"value"       validate:"required,min=1"`
	Transaction int             `json:"transaction" validate:"required,min=1"`
	FoodAttach  *float64        `json:"food_attach" validate:"required,min=0,max=1"`
	Addons      *float64        `json:"addons"      validate:"required,min=0,max=1"`
	EmployeeID  uint            `json:"employee_id" validate:"required"`
}

// UpsertDailySaleRequest is one row of POST /upsertsales, keyed by ID.
type UpsertDailySaleRequest struct {
	ID          uint            `json:"id"          validate:"required"`
	Date        *Date           `json:"date"        validate:"required"`
	Value       decimal.Decimal `json:"value"       validate:"required,min=1"`
	Transaction int             `json:"transaction" validate:"required,min=1"`
	FoodAttach  *float64        `json:"food_attach" validate:"required,min=0,max=1"`
	Addons      *float64        `json:"addons"      validate:"required,min=0,max=1"`
	EmployeeID  uint            `json:"employee_id" validate:"required"`
}

type UpdateDailySaleRequest struct {
	Date        *Date            `json:"date"`
	Value       *decimal.Decimal `json:"value"       validate:"omitempty,min=1"`
	Transaction *int             `json:"transaction" validate:"omitempty,min=1"`
	FoodAttach  *float64         `json:"food_attach" validate:"omitempty,min=0,max=1"`
	Addons      *float64         `json:"addons"      validate:"omitempty,min=0,max=1"`
	EmployeeID  *uint            `json:"employee_id" validate:"omitempty,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DailySaleResponse struct {
	ID          uint            `json:"id"`
	Date        Date            `json:"date"`
	Value       decimal.Decimal `json:"value"`
	Transaction int             `json:"transaction"`
	FoodAttach  float64         `json:"food_attach"`
	Addons      float64         `json:"addons"`
	EmployeeID  uint            `json:"employee_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
