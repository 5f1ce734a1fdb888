package dto

import "github.com/shopspring/decimal"

// ReportQuery is bound from the query string of /report and /report/pdf.
type ReportQuery struct {
	From       string `form:"from"`
	To         string `form:"to"`
	EmployeeID uint   `form:"employee_id"`
}

// ReportDay aggregates the sales of one calendar date against its goal.
// Goal fields are nil when no goal exists for the date.
type ReportDay struct {
	Date            Date             `json:"date"`
	Records         int              `json:"records"`
	Value           decimal.Decimal  `json:"value"`
	Transactions    int              `json:"transactions"`
	FoodAttach      float64          `json:"food_attach"`
	Addons          float64          `json:"addons"`
	Mistakes        decimal.Decimal  `json:"mistakes"`
	ValueGoal       *decimal.Decimal `json:"value_goal,omitempty"`
	TransactionGoal *int             `json:"transaction_goal,omitempty"`
	GoalReached     *bool            `json:"goal_reached,omitempty"`
}

type ReportTotals struct {
	Value        decimal.Decimal `json:"value"`
	Transactions int             `json:"transactions"`
	Mistakes     decimal.Decimal `json:"mistakes"`
	ValueGoal    decimal.Decimal `json:"value_goal"`
	DaysOnGoal   int             `json:"days_on_goal"`
}

type ReportResponse struct {
	From   *Date        `json:"from,omitempty"`
	To     *Date        `json:"to,omitempty"`
	Days   []ReportDay  `json:"days"`
	Totals ReportTotals `json:"totals"`
}
