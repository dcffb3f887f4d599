// Package export renders a ledger snapshot into an XLSX workbook with
// one sheet per calendar month.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/3Finn1Light1/Money-Manager/internal/core"
)

// Exporter writes expense workbooks to a fixed output path.
type Exporter struct {
	path   string
	logger *slog.Logger
}

func NewExporter(path string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{path: path, logger: logger}
}

// Path returns the output file the exporter writes to.
func (x *Exporter) Path() string {
	return x.path
}

// Export groups the snapshot by year+month and writes one sheet per
// distinct month, named like "2024-03". Each sheet has a [Date,
// Category, Amount] header followed by that month's expenses in
// snapshot order. Months are emitted in ascending order so repeated
// exports of the same data produce the same workbook.
func (x *Exporter) Export(ctx context.Context, expenses []core.Expense) error {
	start := time.Now()

	byMonth := make(map[core.YearMonth][]core.Expense)
	for _, e := range expenses {
		ym := core.YearMonthOf(e.Date)
		byMonth[ym] = append(byMonth[ym], e)
	}

	months := make([]core.YearMonth, 0, len(byMonth))
	for ym := range byMonth {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year < months[j].Year
		}
		return months[i].Month < months[j].Month
	})

	f := excelize.NewFile()
	defer f.Close()

	for _, ym := range months {
		sheet := ym.String()
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, byMonth[ym]); err != nil {
			return err
		}
	}

	// Drop the default sheet once real ones exist; an empty snapshot
	// keeps it so the workbook stays valid.
	if len(months) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
		idx, err := f.GetSheetIndex(months[0].String())
		if err != nil {
			return fmt.Errorf("find first sheet: %w", err)
		}
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(x.path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	x.logger.InfoContext(ctx, "Workbook exported",
		"path", x.path,
		"months", len(months),
		"rows", len(expenses),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func writeSheet(f *excelize.File, sheet string, expenses []core.Expense) error {
	headers := []string{"Date", "Category", "Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header %s: %w", sheet, err)
		}
	}

	for row, e := range expenses {
		write := func(col int, v any) error {
			cell, _ := excelize.CoordinatesToCellName(col, row+2)
			return f.SetCellValue(sheet, cell, v)
		}
		if err := write(1, e.Date.Format("2006-01-02")); err != nil {
			return fmt.Errorf("write row %s: %w", sheet, err)
		}
		if err := write(2, e.Category); err != nil {
			return fmt.Errorf("write row %s: %w", sheet, err)
		}
		if err := write(3, e.Amount.Units()); err != nil {
			return fmt.Errorf("write row %s: %w", sheet, err)
		}
	}

	// Widen the date and category columns
	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	return nil
}
