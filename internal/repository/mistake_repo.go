package repository

import (
	"context"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var mistakeUpsertColumns = []string{
	"date", "value", "reason", "receipt", "employee_id", "updated_at",
}

type MistakeRepository interface {
	List(ctx context.Context, filter dto.ListFilter) ([]model.Mistake, error)
	FindByID(ctx context.Context, id uint) (*model.Mistake, error)
	Create(ctx context.Context, m *model.Mistake) error
	CreateMany(ctx context.Context, rows []model.Mistake) error
	Upsert(ctx context.Context, m *model.Mistake) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type mistakeRepo struct{ db *gorm.DB }

func NewMistakeRepository(db *gorm.DB) MistakeRepository { return &mistakeRepo{db: db} }

func (r *mistakeRepo) List(ctx context.Context, filter dto.ListFilter) ([]model.Mistake, error) {
	var list []model.Mistake
	err := applyFilter(r.db.WithContext(ctx), filter).
		Order("date asc, id asc").
		Find(&list).Error
	return list, err
}

func (r *mistakeRepo) FindByID(ctx context.Context, id uint) (*model.Mistake, error) {
	var m model.Mistake
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mistakeRepo) Create(ctx context.Context, m *model.Mistake) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mistakeRepo) CreateMany(ctx context.Context, rows []model.Mistake) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *mistakeRepo) Upsert(ctx context.Context, m *model.Mistake) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(mistakeUpsertColumns),
	}).Create(m).Error
}

func (r *mistakeRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return affected(r.db.WithContext(ctx).Model(&model.Mistake{}).Where("id = ?", id).Updates(fields))
}

func (r *mistakeRepo) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Mistake{}, id))
}
