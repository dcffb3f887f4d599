package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/3Finn1Light1/Money-Manager/internal/core"
	applog "github.com/3Finn1Light1/Money-Manager/internal/log"
)

type stubStore struct {
	loaded  []core.Expense
	loadErr error
	saved   [][]core.Expense
	saveErr error
}

func (s *stubStore) LoadAll(context.Context) ([]core.Expense, error) {
	return s.loaded, s.loadErr
}

func (s *stubStore) SaveAll(_ context.Context, expenses []core.Expense) error {
	s.saved = append(s.saved, expenses)
	return s.saveErr
}

type stubExporter struct {
	snapshots [][]core.Expense
	err       error
}

func (x *stubExporter) Export(_ context.Context, expenses []core.Expense) error {
	if x.err != nil {
		return x.err
	}
	x.snapshots = append(x.snapshots, expenses)
	return nil
}

func (x *stubExporter) Path() string { return "test.xlsx" }

func quietLogger() *applog.Logger {
	return applog.New(applog.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func runSession(t *testing.T, ledger *core.Ledger, store *stubStore, exporter *stubExporter, input string) string {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(ledger, store, exporter, strings.NewReader(input), &out, quietLogger())
	app.Run(context.Background())
	return out.String()
}

func TestRunAddAndExit(t *testing.T) {
	ledger := core.NewLedger()
	store := &stubStore{}

	// add 50 / Food / 05.03.2024, then exit
	out := runSession(t, ledger, store, &stubExporter{}, "1\n50\n1\n05.03.2024\n5\n")

	if !strings.Contains(out, "Expense added.") {
		t.Fatalf("missing confirmation, output:\n%s", out)
	}
	if ledger.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", ledger.Len())
	}
	got := ledger.All()[0]
	want := core.Expense{Amount: core.Money{Cents: 5000}, Category: "Food", Date: core.NewDate(2024, 3, 5)}
	if got != want {
		t.Fatalf("stored %+v, want %+v", got, want)
	}

	// Exit saves the final snapshot
	if len(store.saved) != 1 || len(store.saved[0]) != 1 {
		t.Fatalf("expected one save with one record, got %+v", store.saved)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Fatalf("missing goodbye, output:\n%s", out)
	}
}

func TestRunAddZeroAmountCancels(t *testing.T) {
	ledger := core.NewLedger()
	store := &stubStore{}

	out := runSession(t, ledger, store, &stubExporter{}, "1\n0\n5\n")

	if ledger.Len() != 0 {
		t.Fatalf("cancelled add must not mutate, got %d records", ledger.Len())
	}
	if !strings.Contains(out, "Returning to the main menu.") {
		t.Fatalf("missing cancel message, output:\n%s", out)
	}
}

func TestRunAddInvalidCategorySelection(t *testing.T) {
	ledger := core.NewLedger()

	out := runSession(t, ledger, &stubStore{}, &stubExporter{}, "1\n50\n11\n5\n")

	if ledger.Len() != 0 {
		t.Fatal("out-of-range category must not mutate")
	}
	if !strings.Contains(out, "Invalid category.") {
		t.Fatalf("missing rejection message, output:\n%s", out)
	}
}

func TestRunAddRetriesBadDate(t *testing.T) {
	ledger := core.NewLedger()

	out := runSession(t, ledger, &stubStore{}, &stubExporter{},
		"1\n12,50\n3\n31.02.2024\n05.03.2024\n5\n")

	if !strings.Contains(out, "Invalid or nonexistent date. Try again.") {
		t.Fatalf("missing retry message, output:\n%s", out)
	}
	if ledger.Len() != 1 {
		t.Fatalf("expected the retried add to land, got %d records", ledger.Len())
	}
	got := ledger.All()[0]
	if got.Category != "Entertainment" || got.Amount.Cents != 1250 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestRunStatistics(t *testing.T) {
	ledger := core.NewLedger()
	store := &stubStore{loaded: []core.Expense{
		{Amount: core.Money{Cents: 5000}, Category: "Food", Date: core.NewDate(2024, 3, 5)},
		{Amount: core.Money{Cents: 3000}, Category: "Food", Date: core.NewDate(2024, 3, 12)},
		{Amount: core.Money{Cents: 2000}, Category: "Transport", Date: core.NewDate(2024, 4, 1)},
	}}

	out := runSession(t, ledger, store, &stubExporter{}, "2\n03.2024\n5\n")

	for _, want := range []string{
		"Total expenses for 2024-03: 80.00",
		"Food: 80.00 (100.00%)",
		"Transport: 0.00 (0.00%)",
		"Other: 0.00 (0.00%)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunStatisticsEmptyMonth(t *testing.T) {
	ledger := core.NewLedger()
	store := &stubStore{loaded: []core.Expense{
		{Amount: core.Money{Cents: 2000}, Category: "Transport", Date: core.NewDate(2024, 4, 1)},
	}}

	out := runSession(t, ledger, store, &stubExporter{}, "2\n05.2024\n5\n")

	if !strings.Contains(out, "No expenses recorded for 2024-05.") {
		t.Fatalf("missing empty-month message, output:\n%s", out)
	}
}

func TestRunStatisticsMalformedPeriod(t *testing.T) {
	out := runSession(t, core.NewLedger(), &stubStore{}, &stubExporter{}, "2\n13.2024\n5\n")
	if !strings.Contains(out, "Invalid month and year format.") {
		t.Fatalf("missing malformed-period message, output:\n%s", out)
	}
}

func TestRunDeleteMonth(t *testing.T) {
	ledger := core.NewLedger()
	store := &stubStore{loaded: []core.Expense{
		{Amount: core.Money{Cents: 5000}, Category: "Food", Date: core.NewDate(2024, 3, 5)},
		{Amount: core.Money{Cents: 3000}, Category: "Food", Date: core.NewDate(2024, 3, 12)},
		{Amount: core.Money{Cents: 2000}, Category: "Transport", Date: core.NewDate(2024, 4, 1)},
	}}

	out := runSession(t, ledger, store, &stubExporter{}, "3\n03.2024\n5\n")

	if !strings.Contains(out, "Removed 2 expense(s) for 2024-03.") {
		t.Fatalf("missing delete report, output:\n%s", out)
	}
	rest := ledger.All()
	if len(rest) != 1 || rest[0].Category != "Transport" {
		t.Fatalf("unexpected survivors: %+v", rest)
	}
}

func TestRunDeleteMonthNothingToDelete(t *testing.T) {
	out := runSession(t, core.NewLedger(), &stubStore{}, &stubExporter{}, "3\n03.2024\n5\n")
	if !strings.Contains(out, "Nothing to delete for 2024-03.") {
		t.Fatalf("missing empty-delete message, output:\n%s", out)
	}
}

func TestRunExport(t *testing.T) {
	ledger := core.NewLedger()
	store := &stubStore{loaded: []core.Expense{
		{Amount: core.Money{Cents: 100}, Category: "Food", Date: core.NewDate(2024, 1, 1)},
	}}
	exporter := &stubExporter{}

	out := runSession(t, ledger, store, exporter, "4\n5\n")

	if len(exporter.snapshots) != 1 || len(exporter.snapshots[0]) != 1 {
		t.Fatalf("exporter should receive one snapshot with one record, got %+v", exporter.snapshots)
	}
	if !strings.Contains(out, "Expenses exported to test.xlsx.") {
		t.Fatalf("missing export confirmation, output:\n%s", out)
	}
}

func TestRunExportFailureIsNonFatal(t *testing.T) {
	exporter := &stubExporter{err: errors.New("disk full")}
	store := &stubStore{}

	out := runSession(t, core.NewLedger(), store, exporter, "4\n5\n")

	if !strings.Contains(out, "Export failed") {
		t.Fatalf("missing export failure warning, output:\n%s", out)
	}
	// Session continued and still saved at exit
	if len(store.saved) != 1 {
		t.Fatalf("expected save at shutdown, got %d", len(store.saved))
	}
}

func TestRunLoadFailureStartsEmpty(t *testing.T) {
	store := &stubStore{loadErr: errors.New("corrupt store")}
	ledger := core.NewLedger()

	out := runSession(t, ledger, store, &stubExporter{}, "5\n")

	if !strings.Contains(out, "could not load saved expenses") {
		t.Fatalf("missing load warning, output:\n%s", out)
	}
	if ledger.Len() != 0 {
		t.Fatalf("expected empty ledger, got %d", ledger.Len())
	}
}

func TestRunSaveFailureStillExits(t *testing.T) {
	store := &stubStore{saveErr: errors.New("disk full")}

	out := runSession(t, core.NewLedger(), store, &stubExporter{}, "5\n")

	if !strings.Contains(out, "could not save expenses") {
		t.Fatalf("missing save warning, output:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Fatalf("save failure must not prevent normal shutdown:\n%s", out)
	}
}

func TestRunInvalidMenuOption(t *testing.T) {
	out := runSession(t, core.NewLedger(), &stubStore{}, &stubExporter{}, "9\nx\n5\n")
	if strings.Count(out, "Invalid option. Try again.") != 2 {
		t.Fatalf("expected two rejections, output:\n%s", out)
	}
}

func TestRunSavesOnInputEOF(t *testing.T) {
	// Input ends without choosing Exit; the session still saves.
	store := &stubStore{}
	runSession(t, core.NewLedger(), store, &stubExporter{}, "")
	if len(store.saved) != 1 {
		t.Fatalf("expected save on EOF, got %d", len(store.saved))
	}
}
