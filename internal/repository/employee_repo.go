package repository

import (
	"context"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"

	"gorm.io/gorm"
)

// EmployeeRepository covers employees and their single password row.
type EmployeeRepository interface {
	List(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	FindByCPF(ctx context.Context, cpf string) (*model.Employee, error)
	Create(ctx context.Context, e *model.Employee) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error

	FindPassword(ctx context.Context, employeeID uint) (*model.EmployeePassword, error)
	CreatePassword(ctx context.Context, p *model.EmployeePassword) error
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var list []model.Employee
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *employeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) FindByCPF(ctx context.Context, cpf string) (*model.Employee, error) {
	var e model.Employee
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Update applies a partial column map. gorm.ErrRecordNotFound is returned
// when no row matches id.
func (r *employeeRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).Where("id = ?", id).Updates(fields)
	return affected(res)
}

func (r *employeeRepo) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Employee{}, id))
}

func (r *employeeRepo) FindPassword(ctx context.Context, employeeID uint) (*model.EmployeePassword, error) {
	var p model.EmployeePassword
	if err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *employeeRepo) CreatePassword(ctx context.Context, p *model.EmployeePassword) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// affected turns a zero-row write into gorm.ErrRecordNotFound.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
