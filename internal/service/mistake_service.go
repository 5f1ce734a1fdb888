package service

import (
	"context"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/repository"

	"golang.org/x/sync/errgroup"
)

type MistakeService interface {
	List(ctx context.Context, filter dto.ListFilter) ([]dto.MistakeResponse, error)
	Get(ctx context.Context, id uint) (*dto.MistakeResponse, error)
	Create(ctx context.Context, req dto.CreateMistakeRequest) (*dto.MistakeResponse, error)
	CreateMany(ctx context.Context, reqs []dto.CreateMistakeRequest) (*dto.BulkResult, error)
	UpsertMany(ctx context.Context, reqs []dto.UpsertMistakeRequest) ([]dto.UpsertResult, error)
	Update(ctx context.Context, id uint, req dto.UpdateMistakeRequest) (*dto.MistakeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type mistakeService struct {
	repo        repository.MistakeRepository
	concurrency int
}

func NewMistakeService(repo repository.MistakeRepository, concurrency int) MistakeService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &mistakeService{repo: repo, concurrency: concurrency}
}

func mapMistake(m model.Mistake) dto.MistakeResponse {
	return dto.MistakeResponse{
		ID:         m.ID,
		Date:       dto.NewDate(m.Date),
		Value:      m.Value,
		Reason:     m.Reason,
		Receipt:    m.Receipt,
		EmployeeID: m.EmployeeID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (s *mistakeService) List(ctx context.Context, filter dto.ListFilter) ([]dto.MistakeResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, internal("mistake.list", err)
	}
	resp := make([]dto.MistakeResponse, len(list))
	for i, m := range list {
		resp[i] = mapMistake(m)
	}
	return resp, nil
}

func (s *mistakeService) Get(ctx context.Context, id uint) (*dto.MistakeResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError("mistake.get", err, msgMistakeNotFound)
	}
	resp := mapMistake(*m)
	return &resp, nil
}

func (s *mistakeService) Create(ctx context.Context, req dto.CreateMistakeRequest) (*dto.MistakeResponse, error) {
	m := model.Mistake{
		Date:       req.Date.Time,
		Value:      req.Value,
		Reason:     req.Reason,
		Receipt:    req.Receipt,
		EmployeeID: req.EmployeeID,
	}
	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, writeError("mistake.create", err, msgMistakeNotFound)
	}
	resp := mapMistake(m)
	return &resp, nil
}

func (s *mistakeService) CreateMany(ctx context.Context, reqs []dto.CreateMistakeRequest) (*dto.BulkResult, error) {
	rows := make([]model.Mistake, len(reqs))
	for i, req := range reqs {
		rows[i] = model.Mistake{
			Date:       req.Date.Time,
			Value:      req.Value,
			Reason:     req.Reason,
			Receipt:    req.Receipt,
			EmployeeID: req.EmployeeID,
		}
	}
	if err := s.repo.CreateMany(ctx, rows); err != nil {
		return nil, writeError("mistake.createMany", err, msgMistakeNotFound)
	}
	return &dto.BulkResult{Count: len(rows)}, nil
}

// UpsertMany follows the same per-row contract as the daily sale upsert.
func (s *mistakeService) UpsertMany(ctx context.Context, reqs []dto.UpsertMistakeRequest) ([]dto.UpsertResult, error) {
	results := make([]dto.UpsertResult, len(reqs))
	errs := make([]error, len(reqs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			m := model.Mistake{
				ID:         req.ID,
				Date:       req.Date.Time,
				Value:      req.Value,
				Reason:     req.Reason,
				Receipt:    req.Receipt,
				EmployeeID: req.EmployeeID,
			}
			if err := s.repo.Upsert(ctx, &m); err != nil {
				errs[i] = writeError("mistake.upsert", err, msgMistakeNotFound)
			}
			results[i] = upsertResult(i, req.ID, errs[i])
			return nil
		})
	}
	_ = g.Wait()

	return results, firstError(errs)
}

func (s *mistakeService) Update(ctx context.Context, id uint, req dto.UpdateMistakeRequest) (*dto.MistakeResponse, error) {
	fields := make(map[string]interface{})
	if req.Date != nil {
		fields["date"] = req.Date.Time
	}
	if req.Value != nil {
		fields["value"] = *req.Value
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}
	if req.Receipt != nil {
		fields["receipt"] = *req.Receipt
	}
	if req.EmployeeID != nil {
		fields["employee_id"] = *req.EmployeeID
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, writeError("mistake.update", err, msgUpdateNotFound)
		}
	}
	return s.Get(ctx, id)
}

func (s *mistakeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError("mistake.delete", err, msgMistakeNotFound)
	}
	return nil
}
