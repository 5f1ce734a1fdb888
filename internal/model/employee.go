package model

import (
	"time"
)

// Employee roles. Only non-Cashier roles may hold a password.
const (
	RoleCashier     = "Cashier"
	RoleCoordinator = "Coordinator"
	RoleManager     = "Manager"
)

// Employee stores staff records. CPF is kept digits-only.
type Employee struct {
	ID         uint       `gorm:"primaryKey"`
	FullName   string     `gorm:"size:50;not null"`
	CPF        string     `gorm:"column:cpf;size:11;uniqueIndex;not null"`
	HireDate   time.Time  `gorm:"type:date;not null"`
	ResignDate *time.Time `gorm:"type:date"`
	Image      *string
	Role       string `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Employee) TableName() string { return "employees" }

// EmployeePassword holds the bcrypt hash of an administrative employee.
// At most one row per employee.
type EmployeePassword struct {
	ID           uint      `gorm:"primaryKey"`
	EmployeeID   uint      `gorm:"uniqueIndex;not null"`
	Employee     *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
}

func (EmployeePassword) TableName() string { return "employee_passwords" }
