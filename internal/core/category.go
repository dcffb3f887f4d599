package core

// categories is the fixed spending taxonomy. The order is significant:
// it is the display order for menus and the iteration order for
// monthly statistics.
var categories = [...]string{
	"Food",
	"Transport",
	"Entertainment",
	"Health",
	"Education",
	"Utilities",
	"Shopping",
	"Travel",
	"Rent",
	"Other",
}

// Categories returns the fixed category labels in display order.
// The returned slice is a copy; mutating it does not affect the taxonomy.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories[:])
	return out
}

// IsValidCategory reports whether s is one of the fixed labels.
// Matching is exact: no trimming, no case folding.
func IsValidCategory(s string) bool {
	for _, c := range categories {
		if c == s {
			return true
		}
	}
	return false
}
