package repository

import (
	"context"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var dailySaleUpsertColumns = []string{
	"date", "value", "transaction_count", "food_attach", "addons", "employee_id", "updated_at",
}

type DailySaleRepository interface {
	List(ctx context.Context, filter dto.ListFilter) ([]model.DailySale, error)
	FindByID(ctx context.Context, id uint) (*model.DailySale, error)
	Create(ctx context.Context, s *model.DailySale) error
	CreateMany(ctx context.Context, rows []model.DailySale) error
	Upsert(ctx context.Context, s *model.DailySale) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type dailySaleRepo struct{ db *gorm.DB }

func NewDailySaleRepository(db *gorm.DB) DailySaleRepository { return &dailySaleRepo{db: db} }

func (r *dailySaleRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.DailySale, error) {
	var list []model.DailySale
	err := applyFilter(r.db.WithContext(ctx), filter).
		Order("date asc, id asc").
		Find(&list).Error
	return list, err
}

func (r *dailySaleRepo) FindByID(ctx context.Context, id uint) (*model.DailySale, error) {
	var s model.DailySale
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *dailySaleRepo) Create(ctx context.Context, s *model.DailySale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// CreateMany inserts every row in one statement; nothing is written on error.
func (r *dailySaleRepo) CreateMany(ctx context.Context, rows []model.DailySale) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

// Upsert inserts s or, when its id already exists, overwrites the row.
func (r *dailySaleRepo) Upsert(ctx context.Context, s *model.DailySale) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(dailySaleUpsertColumns),
	}).Create(s).Error
}

func (r *dailySaleRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return affected(r.db.WithContext(ctx).Model(&model.DailySale{}).Where("id = ?", id).Updates(fields))
}

func (r *dailySaleRepo) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.DailySale{}, id))
}

// applyFilter narrows a query over a table with date and employee_id columns.
func applyFilter(q *gorm.DB, f dto.ListFilter) *gorm.DB {
	if f.EmployeeID != 0 {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	return q
}
