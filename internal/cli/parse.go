package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/3Finn1Light1/Money-Manager/internal/core"
)

const dateInputLayout = "02.01.2006" // DD.MM.YYYY

// ParseDate parses a DD.MM.YYYY calendar date. Nonexistent dates such
// as 31.02.2024 are rejected by the strict time.Parse.
func ParseDate(s string) (core.Date, error) {
	t, err := time.Parse(dateInputLayout, strings.TrimSpace(s))
	if err != nil {
		return core.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return core.NewDate(t.Year(), int(t.Month()), t.Day()), nil
}

// ParseMenuChoice parses a numeric menu selection.
func ParseMenuChoice(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q", s)
	}
	return n, nil
}
