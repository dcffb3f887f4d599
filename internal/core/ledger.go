package core

// Ledger owns the ordered collection of expense records. Insertion
// order is preserved and duplicates are allowed. It is a plain mutable
// collection driven by a single interactive caller; it does no locking.
type Ledger struct {
	expenses []Expense
}

// NewLedger creates a ledger seeded with the given records.
func NewLedger(expenses ...Expense) *Ledger {
	l := &Ledger{}
	l.Replace(expenses)
	return l
}

// Replace swaps in a freshly loaded record set, e.g. from persistence.
// Loaded records are trusted as-is and not re-validated.
func (l *Ledger) Replace(expenses []Expense) {
	l.expenses = append(l.expenses[:0:0], expenses...)
}

// Add appends an expense after validating it. A zero amount is the
// input layer's cancel sentinel and is rejected with ErrZeroAmount;
// an unknown category is rejected with ErrInvalidCategory. Neither
// rejection mutates the ledger.
func (l *Ledger) Add(e Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	l.expenses = append(l.expenses, e)
	return nil
}

// Len returns the number of stored records.
func (l *Ledger) Len() int {
	return len(l.expenses)
}

// All returns a snapshot copy of the full record sequence in insertion
// order. Callers may read it freely without affecting the ledger.
func (l *Ledger) All() []Expense {
	return append([]Expense(nil), l.expenses...)
}

// StatisticsForMonth aggregates records whose year and month match the
// period; the day is ignored. Every fixed category appears in the
// result even with a zero total. When the month's total is zero there
// is nothing to report (and no meaningful percentage), so ok is false.
func (l *Ledger) StatisticsForMonth(period YearMonth) (MonthStatistics, bool) {
	totals := make(map[string]int64, len(categories))
	var total int64
	for _, e := range l.expenses {
		if YearMonthOf(e.Date) != period {
			continue
		}
		totals[e.Category] += e.Amount.Cents
		total += e.Amount.Cents
	}

	if total == 0 {
		return MonthStatistics{}, false
	}

	stats := MonthStatistics{
		Period:     period,
		Total:      Money{Cents: total},
		ByCategory: make([]CategoryTotal, 0, len(categories)),
	}
	for _, c := range categories {
		cents := totals[c]
		stats.ByCategory = append(stats.ByCategory, CategoryTotal{
			Category:   c,
			Total:      Money{Cents: cents},
			Percentage: float64(cents) / float64(total) * 100,
		})
	}
	return stats, true
}

// DeleteMonth removes every record in the given month, preserving the
// relative order of the survivors. It returns the number removed;
// zero means there was nothing to delete.
func (l *Ledger) DeleteMonth(period YearMonth) int {
	kept := l.expenses[:0]
	for _, e := range l.expenses {
		if YearMonthOf(e.Date) != period {
			kept = append(kept, e)
		}
	}
	removed := len(l.expenses) - len(kept)
	// Clear the tail so dropped records are not retained by the
	// backing array.
	for i := len(kept); i < len(l.expenses); i++ {
		l.expenses[i] = Expense{}
	}
	l.expenses = kept
	return removed
}
