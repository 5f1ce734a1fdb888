package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateSalesGoalRequest struct {
	Date            *Date           `json:"date"             validate:"required"`
	ValueGoal       decimal.Decimal `json:"value_goal"       validate:"required,min=1"`
	TransactionGoal int             `json:"transaction_goal" validate:"required,min=1"`
	FoodAttachGoal  *float64        `json:"food_attach_goal" validate:"required,min=0,max=1"`
	AddonsGoal      *float64        `json:"addons_goal"      validate:"required,min=0,max=1"`
}

// UpdateSalesGoalRequest may move the goal to another date via Date.
type UpdateSalesGoalRequest struct {
	Date            *Date            `json:"date"`
	ValueGoal       *decimal.Decimal `json:"value_goal"       validate:"omitempty,min=1"`
	TransactionGoal *int             `json:"transaction_goal" validate:"omitempty,min=1"`
	FoodAttachGoal  *float64         `json:"food_attach_goal" validate:"omitempty,min=0,max=1"`
	AddonsGoal      *float64         `json:"addons_goal"      validate:"omitempty,min=0,max=1"`
}

type SalesGoalResponse struct {
	ID              uint            `json:"id"`
	Date            Date            `json:"date"`
	ValueGoal       decimal.Decimal `json:"value_goal"`
	TransactionGoal int             `json:"transaction_goal"`
	FoodAttachGoal  float64         `json:"food_attach_goal"`
	AddonsGoal      float64         `json:"addons_goal"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
