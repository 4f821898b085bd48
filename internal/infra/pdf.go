package infra

// pdf.go renders the KPI dashboard as a one-page A4 report using go-pdf/fpdf:
//   - title and generation timestamp
//   - sites block (total / working / wip)
//   - inventory block (total / ok / low / reorder)
//   - orders block (total, then one row per canonical status)

import (
	"fmt"
	"io"
	"time"

	"bfbsupply/internal/dto"
	"bfbsupply/internal/model"

	"github.com/go-pdf/fpdf"
)

// RenderKPIReport writes the report for r to w. at is printed as the
// snapshot time.
func RenderKPIReport(w io.Writer, r dto.KPIResponse, at time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("Site materials KPI report", false)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Site Materials KPI Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Generated "+at.UTC().Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	labelW := contentW * 0.7
	valueW := contentW * 0.3

	section := func(title string, rows [][2]string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(labelW, 7, title, "B", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 7, "", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range rows {
			pdf.CellFormat(labelW, 6, row[0], "", 0, "L", false, 0, "")
			pdf.CellFormat(valueW, 6, row[1], "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	section("Sites", [][2]string{
		{"Total", count(r.Sites.Total)},
		{"Working", count(r.Sites.Working)},
		{"WIP", count(r.Sites.WIP)},
	})
	section("Inventory", [][2]string{
		{"Total rows", count(r.Inventory.Total)},
		{"OK", count(r.Inventory.OK)},
		{"Low", count(r.Inventory.Low)},
		{"Reorder", count(r.Inventory.Reorder)},
	})

	orders := [][2]string{{"Total", count(r.Orders.Total)}}
	for _, status := range model.OrderStatuses {
		orders = append(orders, [2]string{status, count(r.Orders.ByStatus[status])})
	}
	section("Orders", orders)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: render kpi report: %w", err)
	}
	return nil
}

func count(n int64) string { return fmt.Sprintf("%d", n) }
