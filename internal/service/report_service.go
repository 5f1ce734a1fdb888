package service

import (
	"context"
	"sort"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/infra"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService compares daily sales with the goal of each date.
type ReportService interface {
	Build(ctx context.Context, filter dto.ListFilter) (*dto.ReportResponse, error)
	PDF(ctx context.Context, filter dto.ListFilter) ([]byte, error)
}

type reportService struct {
	sales    repository.DailySaleRepository
	mistakes repository.MistakeRepository
	goals    repository.SalesGoalRepository
}

func NewReportService(
	sales repository.DailySaleRepository,
	mistakes repository.MistakeRepository,
	goals repository.SalesGoalRepository,
) ReportService {
	return &reportService{sales: sales, mistakes: mistakes, goals: goals}
}

type dayAccumulator struct {
	day        dto.ReportDay
	foodAttach float64
	addons     float64
}

// Build aggregates per date. A date appears when it has a sale, a mistake or
// a goal. Ratios are the mean over the date's sale rows.
func (s *reportService) Build(ctx context.Context, filter dto.ListFilter) (*dto.ReportResponse, error) {
	sales, err := s.sales.List(ctx, filter)
	if err != nil {
		return nil, internal("report.sales", err)
	}
	mistakes, err := s.mistakes.List(ctx, filter)
	if err != nil {
		return nil, internal("report.mistakes", err)
	}
	goals, err := s.goals.List(ctx, filter.From, filter.To)
	if err != nil {
		return nil, internal("report.goals", err)
	}

	days := make(map[time.Time]*dayAccumulator)
	at := func(t time.Time) *dayAccumulator {
		key := dto.TruncateDate(t)
		acc, ok := days[key]
		if !ok {
			acc = &dayAccumulator{day: dto.ReportDay{
				Date:     dto.NewDate(key),
				Value:    decimal.Zero,
				Mistakes: decimal.Zero,
			}}
			days[key] = acc
		}
		return acc
	}

	for _, row := range sales {
		acc := at(row.Date)
		acc.day.Records++
		acc.day.Value = acc.day.Value.Add(row.Value)
		acc.day.Transactions += row.Transaction
		acc.foodAttach += row.FoodAttach
		acc.addons += row.Addons
	}
	for _, m := range mistakes {
		acc := at(m.Date)
		acc.day.Mistakes = acc.day.Mistakes.Add(m.Value)
	}
	for _, g := range goals {
		acc := at(g.Date)
		value, trans := g.ValueGoal, g.TransactionGoal
		acc.day.ValueGoal = &value
		acc.day.TransactionGoal = &trans
	}

	resp := &dto.ReportResponse{
		From: dto.DatePtr(filter.From),
		To:   dto.DatePtr(filter.To),
		Days: make([]dto.ReportDay, 0, len(days)),
		Totals: dto.ReportTotals{
			Value:     decimal.Zero,
			Mistakes:  decimal.Zero,
			ValueGoal: decimal.Zero,
		},
	}
	for _, acc := range days {
		d := acc.day
		if d.Records > 0 {
			d.FoodAttach = acc.foodAttach / float64(d.Records)
			d.Addons = acc.addons / float64(d.Records)
		}
		if d.ValueGoal != nil {
			reached := d.Value.GreaterThanOrEqual(*d.ValueGoal)
			d.GoalReached = &reached
			resp.Totals.ValueGoal = resp.Totals.ValueGoal.Add(*d.ValueGoal)
			if reached {
				resp.Totals.DaysOnGoal++
			}
		}
		resp.Totals.Value = resp.Totals.Value.Add(d.Value)
		resp.Totals.Transactions += d.Transactions
		resp.Totals.Mistakes = resp.Totals.Mistakes.Add(d.Mistakes)
		resp.Days = append(resp.Days, d)
	}
	sort.Slice(resp.Days, func(i, j int) bool {
		return resp.Days[i].Date.Before(resp.Days[j].Date.Time)
	})
	return resp, nil
}

func (s *reportService) PDF(ctx context.Context, filter dto.ListFilter) ([]byte, error) {
	report, err := s.Build(ctx, filter)
	if err != nil {
		return nil, err
	}
	out, err := infra.GenerateReportPDF(report, time.Now())
	if err != nil {
		return nil, internal("report.pdf", err)
	}
	return out, nil
}
