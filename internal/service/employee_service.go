package service

import (
	"context"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/repository"
)

type EmployeeService interface {
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Get(ctx context.Context, id uint) (*dto.EmployeeResponse, error)
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func mapEmployee(e model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		CPF:        e.CPF,
		HireDate:   dto.NewDate(e.HireDate),
		ResignDate: dto.DatePtr(e.ResignDate),
		Image:      e.Image,
		Role:       e.Role,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal("employee.list", err)
	}
	resp := make([]dto.EmployeeResponse, len(list))
	for i, e := range list {
		resp[i] = mapEmployee(e)
	}
	return resp, nil
}

func (s *employeeService) Get(ctx context.Context, id uint) (*dto.EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError("employee.get", err, msgEmployeeNotFound)
	}
	resp := mapEmployee(*e)
	return &resp, nil
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &model.Employee{
		FullName: req.FullName,
		CPF:      req.CPF.String(),
		HireDate: req.HireDate.Time,
		Image:    req.Image,
		Role:     req.Role,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, writeError("employee.create", err, msgEmployeeNotFound)
	}
	resp := mapEmployee(*e)
	return &resp, nil
}

// Update changes only the fields present in req. A CPF already held by a
// different employee is rejected before touching the row.
func (s *employeeService) Update(ctx context.Context, id uint, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError("employee.update", err, msgEmployeeNotFound)
	}

	fields := make(map[string]interface{})
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.CPF != nil && req.CPF.String() != current.CPF {
		other, err := s.repo.FindByCPF(ctx, req.CPF.String())
		switch {
		case err == nil && other.ID != id:
			return nil, newError(KindConflict, msgCPFExists, nil)
		case err != nil && classifyStoreError(err) != storeNotFound:
			return nil, internal("employee.update", err)
		}
		fields["cpf"] = req.CPF.String()
	}

	hire := current.HireDate
	if req.HireDate != nil {
		hire = req.HireDate.Time
		fields["hire_date"] = hire
	}
	resign := current.ResignDate
	if req.ResignDate.Set {
		if req.ResignDate.Null {
			resign = nil
			fields["resign_date"] = nil
		} else {
			d := req.ResignDate.Date
			resign = &d
			fields["resign_date"] = d
		}
	}
	if resign != nil && resign.Before(hire) {
		return nil, newError(KindValidation, "resign_date must not precede hire_date", nil)
	}

	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, writeError("employee.update", err, msgUpdateNotFound)
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the employee and its password. Employees that still own
// sales or mistakes cannot be deleted.
func (s *employeeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError("employee.delete", err, msgEmployeeNotFound)
	}
	return nil
}
