package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Build(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	employees := NewEmployeeService(repository.NewEmployeeRepository(db))
	saleRepo := repository.NewDailySaleRepository(db)
	mistakeRepo := repository.NewMistakeRepository(db)
	goalRepo := repository.NewSalesGoalRepository(db)

	sales := NewDailySaleService(saleRepo, 2)
	goals := NewSalesGoalService(goalRepo)
	mistakes := NewMistakeService(mistakeRepo, 2)
	svc := NewReportService(saleRepo, mistakeRepo, goalRepo)

	a := createEmployee(t, employees, "11111111111")
	b := createEmployee(t, employees, "22222222222")

	first := saleRow("2024-01-10", a.ID)
	second := saleRow("2024-01-10", b.ID)
	second.FoodAttach = ratio(0.6)
	_, err := sales.CreateMany(ctx, []dto.CreateDailySaleRequest{first, second, saleRow("2024-01-11", a.ID)})
	require.NoError(t, err)

	_, err = goals.CreateMany(ctx, []dto.CreateSalesGoalRequest{goalRow("2024-01-10"), goalRow("2024-01-12")})
	require.NoError(t, err)

	_, err = mistakes.Create(ctx, dto.CreateMistakeRequest{
		Date: day("2024-01-11"), Value: decimal.NewFromInt(15),
		Reason: "Troco errado", Receipt: "000123", EmployeeID: a.ID,
	})
	require.NoError(t, err)

	report, err := svc.Build(ctx, dto.ListFilter{})
	require.NoError(t, err)
	require.Len(t, report.Days, 3)

	d10 := report.Days[0]
	assert.Equal(t, "2024-01-10", d10.Date.Format(dto.DateLayout))
	assert.Equal(t, 2, d10.Records)
	assert.True(t, decimal.RequireFromString("3001").Equal(d10.Value))
	assert.Equal(t, 240, d10.Transactions)
	assert.InDelta(t, 0.5, d10.FoodAttach, 1e-9)
	require.NotNil(t, d10.GoalReached)
	assert.True(t, *d10.GoalReached)

	d11 := report.Days[1]
	assert.Nil(t, d11.ValueGoal)
	assert.True(t, decimal.NewFromInt(15).Equal(d11.Mistakes))

	d12 := report.Days[2]
	assert.Equal(t, 0, d12.Records)
	require.NotNil(t, d12.GoalReached)
	assert.False(t, *d12.GoalReached)

	assert.True(t, decimal.RequireFromString("4501.5").Equal(report.Totals.Value))
	assert.True(t, decimal.NewFromInt(2000).Equal(report.Totals.ValueGoal))
	assert.Equal(t, 1, report.Totals.DaysOnGoal)

	byEmployee, err := svc.Build(ctx, dto.ListFilter{EmployeeID: b.ID})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(byEmployee.Totals.Value))

	pdf, err := svc.PDF(ctx, dto.ListFilter{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
