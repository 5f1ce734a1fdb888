package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateEmployeeRequest struct {
	FullName string  `json:"full_name" validate:"required,fullname"`
	CPF      CPF     `json:"cpf"       validate:"required,cpf"`
	HireDate *Date   `json:"hire_date" validate:"required"`
	Role     string  `json:"role"      validate:"required,oneof=Cashier Coordinator Manager"`
	Image    *string `json:"image"     validate:"omitempty,max=2048"`
}

// UpdateEmployeeRequest carries only the fields to change. An explicit
// "resign_date": null clears the resign date.
type UpdateEmployeeRequest struct {
	FullName   *string      `json:"full_name"   validate:"omitempty,fullname"`
	CPF        *CPF         `json:"cpf"         validate:"omitempty,cpf"`
	HireDate   *Date        `json:"hire_date"`
	ResignDate OptionalDate `json:"resign_date"`
	Image      *string      `json:"image"       validate:"omitempty,max=2048"`
	Role       *string      `json:"role"        validate:"omitempty,oneof=Cashier Coordinator Manager"`
}

// validateEmployeeDates rejects a resign date before the hire date when both
// arrive in the same request.
func validateEmployeeDates(sl validator.StructLevel) {
	req := sl.Current().Interface().(UpdateEmployeeRequest)
	if req.HireDate == nil || !req.ResignDate.Set || req.ResignDate.Null {
		return
	}
	if req.ResignDate.Date.Before(req.HireDate.Time) {
		sl.ReportError(req.ResignDate, "resign_date", "ResignDate", "gtefield", "hire_date")
	}
}

// RegisterValidations attaches the struct-level rules of this package.
func RegisterValidations(v *validator.Validate) {
	v.RegisterStructValidation(validateEmployeeDates, UpdateEmployeeRequest{})
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmployeeResponse struct {
	ID         uint      `json:"id"`
	FullName   string    `json:"full_name"`
	CPF        string    `json:"cpf"`
	HireDate   Date      `json:"hire_date"`
	ResignDate *Date     `json:"resign_date"`
	Image      *string   `json:"image"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
