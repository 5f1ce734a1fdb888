package repository

import (
	"context"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"

	"gorm.io/gorm"
)

// SalesGoalRepository addresses goals by their unique calendar date.
type SalesGoalRepository interface {
	List(ctx context.Context, from, to *time.Time) ([]model.SalesGoal, error)
	FindByDate(ctx context.Context, date time.Time) (*model.SalesGoal, error)
	Create(ctx context.Context, g *model.SalesGoal) error
	CreateMany(ctx context.Context, rows []model.SalesGoal) error
	Update(ctx context.Context, date time.Time, fields map[string]interface{}) error
	Delete(ctx context.Context, date time.Time) error
}

type salesGoalRepo struct{ db *gorm.DB }

func NewSalesGoalRepository(db *gorm.DB) SalesGoalRepository { return &salesGoalRepo{db: db} }

func (r *salesGoalRepo) List(ctx context.Context, from, to *time.Time) ([]model.SalesGoal, error) {
	var list []model.SalesGoal
	q := r.db.WithContext(ctx)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	err := q.Order("date asc").Find(&list).Error
	return list, err
}

func (r *salesGoalRepo) FindByDate(ctx context.Context, date time.Time) (*model.SalesGoal, error) {
	var g model.SalesGoal
	if err := r.db.WithContext(ctx).Where("date = ?", date).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *salesGoalRepo) Create(ctx context.Context, g *model.SalesGoal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *salesGoalRepo) CreateMany(ctx context.Context, rows []model.SalesGoal) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *salesGoalRepo) Update(ctx context.Context, date time.Time, fields map[string]interface{}) error {
	return affected(r.db.WithContext(ctx).Model(&model.SalesGoal{}).Where("date = ?", date).Updates(fields))
}

func (r *salesGoalRepo) Delete(ctx context.Context, date time.Time) error {
	return affected(r.db.WithContext(ctx).Where("date = ?", date).Delete(&model.SalesGoal{}))
}
