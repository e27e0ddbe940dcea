package dataset

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// naMarkers are the cell values read_csv treats as missing by default.
var naMarkers = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

func isMissing(cell string) bool {
	_, ok := naMarkers[cell]
	return ok
}

// numericDate matches D/M/YYYY with '/', '-' or '.' between the fields.
var numericDate = regexp.MustCompile(`^(\d{1,2})([/.-])(\d{1,2})([/.-])(\d{4})$`)

// ParseOrderDate reads a date with the day before the month. A reading that
// is impossible day-first (month > 12) is retried with the fields swapped.
func ParseOrderDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if isMissing(cell) {
		return time.Time{}, false
	}

	if m := numericDate.FindStringSubmatch(cell); m != nil {
		if m[2] != m[4] {
			return time.Time{}, false
		}
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[3])
		year, _ := strconv.Atoi(m[5])
		if t, ok := civilDate(year, month, day); ok {
			return t, true
		}
		return civilDate(year, day, month)
	}

	// bare numbers past yyyymmdd would be read as epoch times
	if len(cell) > 8 && isDigits(cell) {
		return time.Time{}, false
	}

	t, err := dateparse.ParseIn(cell, time.UTC,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// civilDate rejects field values time.Date would normalise, such as 31/02.
func civilDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseSales reads an exact decimal amount. Infinite, NaN and
// thousands-separated values are rejected.
func ParseSales(cell string) (decimal.Decimal, bool) {
	cell = strings.TrimSpace(cell)
	if isMissing(cell) {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseLabel returns "" for cells that count as missing.
func parseLabel(cell string) string {
	if isMissing(cell) {
		return ""
	}
	return cell
}
