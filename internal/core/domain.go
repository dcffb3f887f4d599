package core

import (
	"errors"
	"fmt"
	"time"
)

type (
	// Date is a calendar date with no meaningful time component.
	Date struct {
		time.Time
	}

	// YearMonth identifies a calendar month. It is the key for
	// statistics and bulk deletion.
	YearMonth struct {
		Year  int
		Month int // 1-12
	}

	// Expense is a single recorded spending entry. Values are immutable
	// once created; the ledger never modifies a stored expense.
	Expense struct {
		Amount   Money
		Category string
		Date     Date
	}
)

var (
	ErrZeroAmount      = errors.New("zero amount")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPeriod   = errors.New("invalid period")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// YearMonthOf extracts the month key of a date; the day is discarded.
func YearMonthOf(d Date) YearMonth {
	return YearMonth{Year: d.Time.Year(), Month: int(d.Time.Month())}
}

// ParseYearMonth parses a "MM.YYYY" period string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("01.2006", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return YearMonth{Year: t.Year(), Month: int(t.Month())}, nil
}

// String renders the month identifier used for display and sheet names,
// e.g. "2024-03".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

func (e Expense) Validate() error {
	if e.Amount.Cents == 0 {
		return ErrZeroAmount
	}
	if !IsValidCategory(e.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, e.Category)
	}
	return e.Date.Validate()
}
