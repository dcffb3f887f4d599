package core

// CategoryTotal is the aggregated amount and share for one category.
type CategoryTotal struct {
	Category   string
	Total      Money
	Percentage float64 // of the month's total, 0-100
}

// MonthStatistics is the aggregation result for one year+month.
// ByCategory always holds every fixed category, in taxonomy order,
// including those with a zero total.
type MonthStatistics struct {
	Period     YearMonth
	Total      Money
	ByCategory []CategoryTotal
}
