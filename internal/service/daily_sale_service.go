package service

import (
	"context"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/repository"

	"golang.org/x/sync/errgroup"
)

type DailySaleService interface {
	List(ctx context.Context, filter dto.ListFilter) ([]dto.DailySaleResponse, error)
	Get(ctx context.Context, id uint) (*dto.DailySaleResponse, error)
	Create(ctx context.Context, req dto.CreateDailySaleRequest) (*dto.DailySaleResponse, error)
	CreateMany(ctx context.Context, reqs []dto.CreateDailySaleRequest) (*dto.BulkResult, error)
	UpsertMany(ctx context.Context, reqs []dto.UpsertDailySaleRequest) ([]dto.UpsertResult, error)
	Update(ctx context.Context, id uint, req dto.UpdateDailySaleRequest) (*dto.DailySaleResponse, error)
	Delete(ctx context.Context, id uint) error
}

type dailySaleService struct {
	repo        repository.DailySaleRepository
	concurrency int
}

// NewDailySaleService builds the service. concurrency bounds the number of
// in-flight upsert statements of one UpsertMany call.
func NewDailySaleService(repo repository.DailySaleRepository, concurrency int) DailySaleService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &dailySaleService{repo: repo, concurrency: concurrency}
}

func mapDailySale(s model.DailySale) dto.DailySaleResponse {
	return dto.DailySaleResponse{
		ID:          s.ID,
		Date:        dto.NewDate(s.Date),
		Value:       s.Value,
		Transaction: s.Transaction,
		FoodAttach:  s.FoodAttach,
		Addons:      s.Addons,
		EmployeeID:  s.EmployeeID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func newDailySale(req dto.CreateDailySaleRequest) model.DailySale {
	return model.DailySale{
		Date:        req.Date.Time,
		Value:       req.Value,
		Transaction: req.Transaction,
		FoodAttach:  *req.FoodAttach,
		Addons:      *req.Addons,
		EmployeeID:  req.EmployeeID,
	}
}

func (s *dailySaleService) List(ctx context.Context, filter dto.ListFilter) ([]dto.DailySaleResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, internal("dailysale.list", err)
	}
	resp := make([]dto.DailySaleResponse, len(list))
	for i, row := range list {
		resp[i] = mapDailySale(row)
	}
	return resp, nil
}

func (s *dailySaleService) Get(ctx context.Context, id uint) (*dto.DailySaleResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError("dailysale.get", err, msgSaleNotFound)
	}
	resp := mapDailySale(*row)
	return &resp, nil
}

func (s *dailySaleService) Create(ctx context.Context, req dto.CreateDailySaleRequest) (*dto.DailySaleResponse, error) {
	row := newDailySale(req)
	if err := s.repo.Create(ctx, &row); err != nil {
		return nil, writeError("dailysale.create", err, msgSaleNotFound)
	}
	resp := mapDailySale(row)
	return &resp, nil
}

// CreateMany inserts all rows or none.
func (s *dailySaleService) CreateMany(ctx context.Context, reqs []dto.CreateDailySaleRequest) (*dto.BulkResult, error) {
	rows := make([]model.DailySale, len(reqs))
	for i, req := range reqs {
		rows[i] = newDailySale(req)
	}
	if err := s.repo.CreateMany(ctx, rows); err != nil {
		return nil, writeError("dailysale.createMany", err, msgSaleNotFound)
	}
	return &dto.BulkResult{Count: len(rows)}, nil
}

// UpsertMany writes every row with its own statement, at most s.concurrency
// at a time. Rows succeed or fail independently; the returned error is the
// failure of the lowest-indexed failed row, nil when all rows were written.
func (s *dailySaleService) UpsertMany(ctx context.Context, reqs []dto.UpsertDailySaleRequest) ([]dto.UpsertResult, error) {
	results := make([]dto.UpsertResult, len(reqs))
	errs := make([]error, len(reqs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			row := model.DailySale{
				ID:          req.ID,
				Date:        req.Date.Time,
				Value:       req.Value,
				Transaction: req.Transaction,
				FoodAttach:  *req.FoodAttach,
				Addons:      *req.Addons,
				EmployeeID:  req.EmployeeID,
			}
			if err := s.repo.Upsert(ctx, &row); err != nil {
				errs[i] = writeError("dailysale.upsert", err, msgSaleNotFound)
			}
			results[i] = upsertResult(i, req.ID, errs[i])
			return nil
		})
	}
	_ = g.Wait()

	return results, firstError(errs)
}

func (s *dailySaleService) Update(ctx context.Context, id uint, req dto.UpdateDailySaleRequest) (*dto.DailySaleResponse, error) {
	fields := make(map[string]interface{})
	if req.Date != nil {
		fields["date"] = req.Date.Time
	}
	if req.Value != nil {
		fields["value"] = *req.Value
	}
	if req.Transaction != nil {
		fields["transaction_count"] = *req.Transaction
	}
	if req.FoodAttach != nil {
		fields["food_attach"] = *req.FoodAttach
	}
	if req.Addons != nil {
		fields["addons"] = *req.Addons
	}
	if req.EmployeeID != nil {
		fields["employee_id"] = *req.EmployeeID
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, writeError("dailysale.update", err, msgUpdateNotFound)
		}
	}
	return s.Get(ctx, id)
}

func (s *dailySaleService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteError("dailysale.delete", err, msgSaleNotFound)
	}
	return nil
}

func upsertResult(index int, id uint, err error) dto.UpsertResult {
	if err != nil {
		return dto.UpsertResult{Index: index, ID: id, Status: dto.UpsertStatusFailed, Error: MessageOf(err)}
	}
	return dto.UpsertResult{Index: index, ID: id, Status: dto.UpsertStatusOK}
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
