package infra

// Sales report rendering with go-pdf/fpdf.
// One A4 page (more when the period is long) with:
//   - Title and covered period
//   - One row per date: records, value, transactions, ratios, mistakes, goal
//   - Totals line and the number of days the value goal was reached

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateReportPDF renders report and returns the PDF bytes.
func GenerateReportPDF(report *dto.ReportResponse, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Sales report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Period: "+reportPeriod(report), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, "Generated "+generatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Table header ─────────────────────────────────────────────────────────
	widths := []float64{24, 16, 28, 22, 20, 18, 26, 32}
	headers := []string{"Date", "Rows", "Value", "Trans.", "Food", "Addons", "Mistakes", "Goal"}

	pdf.SetFont("Helvetica", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "B", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, d := range report.Days {
		goal := "-"
		if d.ValueGoal != nil {
			goal = d.ValueGoal.StringFixed(2)
			if d.GoalReached != nil && *d.GoalReached {
				goal += " (ok)"
			}
		}
		cells := []string{
			d.Date.Format(dto.DateLayout),
			strconv.Itoa(d.Records),
			d.Value.StringFixed(2),
			strconv.Itoa(d.Transactions),
			fmt.Sprintf("%.0f%%", d.FoodAttach*100),
			fmt.Sprintf("%.0f%%", d.Addons*100),
			d.Mistakes.StringFixed(2),
			goal,
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 5, c, "", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	t := report.Totals
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW/2, 6, "Total value: "+t.Value.StringFixed(2), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Value goal: "+t.ValueGoal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Transactions: "+strconv.Itoa(t.Transactions), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Mistakes: "+t.Mistakes.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Days on goal: %d of %d", t.DaysOnGoal, len(report.Days)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}

func reportPeriod(r *dto.ReportResponse) string {
	from, to := "start", "today"
	if r.From != nil {
		from = r.From.Format(dto.DateLayout)
	}
	if r.To != nil {
		to = r.To.Format(dto.DateLayout)
	}
	return from + " to " + to
}
