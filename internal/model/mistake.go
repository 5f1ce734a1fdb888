package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mistake records a cash shortage or register error attributed to an employee.
// Receipt identifies the transaction the mistake was found on.
type Mistake struct {
	ID         uint            `gorm:"primaryKey"`
	Date       time.Time       `gorm:"type:date;index;not null"`
	Value      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason     string          `gorm:"not null"`
	Receipt    string          `gorm:"not null"`
	EmployeeID uint            `gorm:"index;not null"`
	Employee   *Employee       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Mistake) TableName() string { return "mistakes" }
