package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/3Finn1Light1/Money-Manager/internal/core"
	applog "github.com/3Finn1Light1/Money-Manager/internal/log"
)

// Ports for the ledger's collaborators.
type (
	// ExpenseStore loads and saves the full record collection.
	ExpenseStore interface {
		LoadAll(ctx context.Context) ([]core.Expense, error)
		SaveAll(ctx context.Context, expenses []core.Expense) error
	}

	// ReportExporter renders a read-only snapshot into a workbook.
	ReportExporter interface {
		Export(ctx context.Context, expenses []core.Expense) error
		Path() string
	}
)

// App is the interactive console driver. It owns all prompting and
// retry loops and is the only caller of the ledger during a session.
type App struct {
	ledger   *core.Ledger
	store    ExpenseStore
	exporter ReportExporter
	in       *bufio.Scanner
	out      io.Writer
	logger   *applog.Logger
}

func NewApp(ledger *core.Ledger, store ExpenseStore, exporter ReportExporter, in io.Reader, out io.Writer, logger *applog.Logger) *App {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &App{
		ledger:   ledger,
		store:    store,
		exporter: exporter,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger.WithComponent(applog.ComponentCLI),
	}
}

// Run drives a full session: load persisted records, loop over the
// menu until the user quits (or input ends), then save. Load, save and
// export failures are reported as warnings and never abort the
// session; the process always reaches a normal shutdown.
func (a *App) Run(ctx context.Context) {
	a.load(ctx)

	for {
		fmt.Fprint(a.out, "\nExpense tracker menu:\n"+
			"1. Add expense\n"+
			"2. Monthly statistics\n"+
			"3. Delete a month\n"+
			"4. Export to Excel\n"+
			"5. Exit\n"+
			"Choose an option: ")

		line, ok := a.readLine()
		if !ok {
			break // input closed, shut down normally
		}
		choice, err := ParseMenuChoice(line)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid option. Try again.")
			continue
		}

		switch choice {
		case 1:
			a.runAdd()
		case 2:
			a.runStatistics()
		case 3:
			a.runDeleteMonth()
		case 4:
			a.runExport(ctx)
		case 5:
			a.save(ctx)
			fmt.Fprintln(a.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid option. Try again.")
		}
	}

	a.save(ctx)
}

func (a *App) load(ctx context.Context) {
	expenses, err := a.store.LoadAll(ctx)
	if err != nil {
		a.logger.Warn("Failed to load saved expenses", applog.FieldError, err)
		fmt.Fprintln(a.out, "Warning: could not load saved expenses; starting empty.")
		return
	}
	a.ledger.Replace(expenses)
	if len(expenses) > 0 {
		fmt.Fprintf(a.out, "Loaded %d expense(s).\n", len(expenses))
	}
}

func (a *App) save(ctx context.Context) {
	if err := a.store.SaveAll(ctx, a.ledger.All()); err != nil {
		a.logger.Warn("Failed to save expenses", applog.FieldError, err)
		fmt.Fprintln(a.out, "Warning: could not save expenses.")
		return
	}
	fmt.Fprintln(a.out, "Data saved.")
}

func (a *App) runAdd() {
	fmt.Fprintln(a.out, "Enter 0 to return to the menu.")

	amount, ok := a.promptAmount()
	if !ok {
		return
	}
	if amount.IsZero() {
		fmt.Fprintln(a.out, "Returning to the main menu.")
		return
	}

	category, ok := a.promptCategory()
	if !ok {
		return
	}

	date, ok := a.promptDate()
	if !ok {
		return
	}

	e := core.Expense{Amount: amount, Category: category, Date: date}
	if err := a.ledger.Add(e); err != nil {
		fmt.Fprintf(a.out, "Could not add expense: %v\n", err)
		return
	}
	a.logger.Info("Expense added",
		applog.FieldCategory, category,
		applog.FieldAmountCents, amount.Cents)
	fmt.Fprintln(a.out, "Expense added.")
}

func (a *App) runStatistics() {
	period, ok := a.promptPeriod("Enter month and year (MM.YYYY) for statistics: ")
	if !ok {
		return
	}

	stats, ok := a.ledger.StatisticsForMonth(period)
	if !ok {
		fmt.Fprintf(a.out, "No expenses recorded for %s.\n", period)
		return
	}

	fmt.Fprintf(a.out, "\nTotal expenses for %s: %s\n", stats.Period, stats.Total)
	for _, ct := range stats.ByCategory {
		fmt.Fprintf(a.out, "%s: %s (%.2f%%)\n", ct.Category, ct.Total, ct.Percentage)
	}
}

func (a *App) runDeleteMonth() {
	period, ok := a.promptPeriod("Enter month and year (MM.YYYY) to delete: ")
	if !ok {
		return
	}

	removed := a.ledger.DeleteMonth(period)
	a.logger.Info("Month deleted",
		applog.FieldYear, period.Year,
		applog.FieldMonth, period.Month,
		applog.FieldRemoved, removed)
	if removed == 0 {
		fmt.Fprintf(a.out, "Nothing to delete for %s.\n", period)
		return
	}
	fmt.Fprintf(a.out, "Removed %d expense(s) for %s.\n", removed, period)
}

func (a *App) runExport(ctx context.Context) {
	if err := a.exporter.Export(ctx, a.ledger.All()); err != nil {
		a.logger.Warn("Export failed", applog.FieldError, err)
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Expenses exported to %s.\n", a.exporter.Path())
}

// promptAmount reads an amount, retrying on malformed input. A zero
// amount is returned as-is; the caller treats it as cancel.
func (a *App) promptAmount() (core.Money, bool) {
	for {
		fmt.Fprint(a.out, "Enter amount: ")
		line, ok := a.readLine()
		if !ok {
			return core.Money{}, false
		}
		amount, err := core.ParseAmount(line)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid amount. Try again.")
			continue
		}
		return amount, true
	}
}

// promptCategory shows the numbered taxonomy and reads one selection.
// Out-of-range input rejects the whole add, matching the menu flow.
func (a *App) promptCategory() (string, bool) {
	categories := core.Categories()
	fmt.Fprintln(a.out, "Choose a category:")
	for i, c := range categories {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c)
	}
	fmt.Fprintln(a.out, "0. Back to menu.")

	line, ok := a.readLine()
	if !ok {
		return "", false
	}
	n, err := ParseMenuChoice(line)
	if err != nil || n < 0 || n > len(categories) {
		fmt.Fprintln(a.out, "Invalid category.")
		return "", false
	}
	if n == 0 {
		fmt.Fprintln(a.out, "Returning to the main menu.")
		return "", false
	}
	return categories[n-1], true
}

// promptDate reads a calendar date, retrying until it parses or the
// user cancels with 0.
func (a *App) promptDate() (core.Date, bool) {
	for {
		fmt.Fprint(a.out, "Enter date (DD.MM.YYYY): ")
		line, ok := a.readLine()
		if !ok {
			return core.Date{}, false
		}
		if line == "0" {
			fmt.Fprintln(a.out, "Returning to the main menu.")
			return core.Date{}, false
		}
		date, err := ParseDate(line)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid or nonexistent date. Try again.")
			continue
		}
		return date, true
	}
}

func (a *App) promptPeriod(prompt string) (core.YearMonth, bool) {
	fmt.Fprintln(a.out, "Enter 0 to return to the menu.")
	fmt.Fprint(a.out, prompt)
	line, ok := a.readLine()
	if !ok {
		return core.YearMonth{}, false
	}
	if line == "0" {
		fmt.Fprintln(a.out, "Returning to the main menu.")
		return core.YearMonth{}, false
	}
	period, err := core.ParseYearMonth(line)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid month and year format.")
		return core.YearMonth{}, false
	}
	return period, true
}

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}
