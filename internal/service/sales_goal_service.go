package service

import (
	"context"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/repository"
)

// SalesGoalService addresses goals by calendar date.
type SalesGoalService interface {
	List(ctx context.Context, filter dto.ListFilter) ([]dto.SalesGoalResponse, error)
	Get(ctx context.Context, date time.Time) (*dto.SalesGoalResponse, error)
	Create(ctx context.Context, req dto.CreateSalesGoalRequest) (*dto.SalesGoalResponse, error)
	CreateMany(ctx context.Context, reqs []dto.CreateSalesGoalRequest) (*dto.BulkResult, error)
	Update(ctx context.Context, date time.Time, req dto.UpdateSalesGoalRequest) (*dto.SalesGoalResponse, error)
	Delete(ctx context.Context, date time.Time) error
}

type salesGoalService struct {
	repo repository.SalesGoalRepository
}

func NewSalesGoalService(repo repository.SalesGoalRepository) SalesGoalService {
	return &salesGoalService{repo: repo}
}

func mapSalesGoal(g model.SalesGoal) dto.SalesGoalResponse {
	return dto.SalesGoalResponse{
		ID:              g.ID,
		Date:            dto.NewDate(g.Date),
		ValueGoal:       g.ValueGoal,
		TransactionGoal: g.TransactionGoal,
		FoodAttachGoal:  g.FoodAttachGoal,
		AddonsGoal:      g.AddonsGoal,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func newSalesGoal(req dto.CreateSalesGoalRequest) model.SalesGoal {
	return model.SalesGoal{
		Date:            req.Date.Time,
		ValueGoal:       req.ValueGoal,
		TransactionGoal: req.TransactionGoal,
		FoodAttachGoal:  *req.FoodAttachGoal,
		AddonsGoal:      *req.AddonsGoal,
	}
}

func (s *salesGoalService) List(ctx context.Context, filter dto.ListFilter) ([]dto.SalesGoalResponse, error) {
	list, err := s.repo.List(ctx, filter.From, filter.To)
	if err != nil {
		return nil, internal("salesgoal.list", err)
	}
	resp := make([]dto.SalesGoalResponse, len(list))
	for i, g := range list {
		resp[i] = mapSalesGoal(g)
	}
	return resp, nil
}

func (s *salesGoalService) Get(ctx context.Context, date time.Time) (*dto.SalesGoalResponse, error) {
	g, err := s.repo.FindByDate(ctx, dto.TruncateDate(date))
	if err != nil {
		return nil, readError("salesgoal.get", err, msgGoalNotFound)
	}
	resp := mapSalesGoal(*g)
	return &resp, nil
}

func (s *salesGoalService) Create(ctx context.Context, req dto.CreateSalesGoalRequest) (*dto.SalesGoalResponse, error) {
	g := newSalesGoal(req)
	if err := s.repo.Create(ctx, &g); err != nil {
		return nil, writeError("salesgoal.create", err, msgGoalNotFound)
	}
	resp := mapSalesGoal(g)
	return &resp, nil
}

func (s *salesGoalService) CreateMany(ctx context.Context, reqs []dto.CreateSalesGoalRequest) (*dto.BulkResult, error) {
	rows := make([]model.SalesGoal, len(reqs))
	for i, req := range reqs {
		rows[i] = newSalesGoal(req)
	}
	if err := s.repo.CreateMany(ctx, rows); err != nil {
		return nil, writeError("salesgoal.createMany", err, msgGoalNotFound)
	}
	return &dto.BulkResult{Count: len(rows)}, nil
}

// Update may move the goal to req.Date; moving onto a date that already has a
// goal is a conflict.
func (s *salesGoalService) Update(ctx context.Context, date time.Time, req dto.UpdateSalesGoalRequest) (*dto.SalesGoalResponse, error) {
	date = dto.TruncateDate(date)
	target := date

	fields := make(map[string]interface{})
	if req.Date != nil {
		target = req.Date.Time
		fields["date"] = target
	}
	if req.ValueGoal != nil {
		fields["value_goal"] = *req.ValueGoal
	}
	if req.TransactionGoal != nil {
		fields["transaction_goal"] = *req.TransactionGoal
	}
	if req.FoodAttachGoal != nil {
		fields["food_attach_goal"] = *req.FoodAttachGoal
	}
	if req.AddonsGoal != nil {
		fields["addons_goal"] = *req.AddonsGoal
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, date, fields); err != nil {
			return nil, writeError("salesgoal.update", err, msgUpdateNotFound)
		}
	}
	return s.Get(ctx, target)
}

func (s *salesGoalService) Delete(ctx context.Context, date time.Time) error {
	if err := s.repo.Delete(ctx, dto.TruncateDate(date)); err != nil {
		return deleteError("salesgoal.delete", err, msgGoalNotFound)
	}
	return nil
}
