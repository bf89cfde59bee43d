// Package pricing handles the legacy storefront price format
// ("Rs. 1,500 - 3,000") and the price-bracket buckets used by the
// catalog filter.
package pricing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Bracket sentinels. BracketAll bypasses the price filter entirely.
const (
	BracketAll        = "all"
	BracketUnder2000  = "under-2000"
	Bracket2000to4000 = "2000-4000"
	Bracket4000to6000 = "4000-6000"
	BracketOver6000   = "over-6000"
)

var amountPattern = regexp.MustCompile(`\d[\d,]*`)

// FormatRange renders (min, max) in the storefront display form with
// thousands separators.
func FormatRange(min, max int) string {
	return fmt.Sprintf("Rs. %s - %s", group(min), group(max))
}

// ParseRange extracts the price bounds from a display string. A string
// with no numeric content yields (0, 0, false) rather than an error;
// callers log the miss so a genuine zero price stays distinguishable.
func ParseRange(s string) (min, max int, ok bool) {
	matches := amountPattern.FindAllString(s, 2)
	if len(matches) == 0 {
		return 0, 0, false
	}
	min = atoi(matches[0])
	max = min
	if len(matches) > 1 {
		max = atoi(matches[1])
	}
	return min, max, true
}

// ParseAmount extracts the leading numeric amount from a display
// string, e.g. "Rs. 1,999" -> 1999. Unparsable input yields (0, false).
func ParseAmount(s string) (int, bool) {
	m := amountPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	return atoi(m), true
}

// MatchesBracket reports whether an amount falls in a bracket. Bounds
// are inclusive, so 4000 belongs to both 2000-4000 and 4000-6000.
// An amount that failed to parse (ok == false) matches only BracketAll.
func MatchesBracket(amount int, ok bool, bracket string) bool {
	if bracket == "" || bracket == BracketAll {
		return true
	}
	if !ok {
		return false
	}
	switch bracket {
	case BracketUnder2000:
		return amount < 2000
	case Bracket2000to4000:
		return amount >= 2000 && amount <= 4000
	case Bracket4000to6000:
		return amount >= 4000 && amount <= 6000
	case BracketOver6000:
		return amount > 6000
	default:
		return false
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	return n
}

func group(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
