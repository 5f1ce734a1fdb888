package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySale is the sales summary an employee closed on a given date.
// FoodAttach and Addons are ratios in [0,1].
type DailySale struct {
	ID          uint            `gorm:"primaryKey"`
	Date        time.Time       `gorm:"type:date;index;not null"`
	Value       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Transaction int             `gorm:"column:transaction_count;not null"`
	FoodAttach  float64         `gorm:"not null"`
	Addons      float64         `gorm:"not null"`
	EmployeeID  uint            `gorm:"index;not null"`
	Employee    *Employee       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DailySale) TableName() string { return "sales" }

// SalesGoal is the target for a calendar date. One row per date.
type SalesGoal struct {
	ID              uint            `gorm:"primaryKey"`
	Date            time.Time       `gorm:"type:date;uniqueIndex;not null"`
	ValueGoal       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TransactionGoal int             `gorm:"not null"`
	FoodAttachGoal  float64         `gorm:"not null"`
	AddonsGoal      float64         `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SalesGoal) TableName() string { return "sale_goals" }
