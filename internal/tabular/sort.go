package tabular

import (
	"math"
	"sort"
	"strings"
)

// Comparator is a three-way comparison over rows of one variant.
type Comparator[T any] func(a, b T) int

// Columns maps upper-case column names to their comparator. Each column is
// bound to one comparison semantics at definition time: lexicographic for
// strings, dates and enums; total-order numeric for floats.
type Columns[T any] map[string]Comparator[T]

// byString builds a lexicographic comparator over a string field. Formatted
// timestamps ("2006-01-02 15:04:05") sort chronologically under it.
func byString[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(field(a), field(b))
	}
}

// byFloat builds a total-order numeric comparator over a float field.
// NaN sorts after every real number, so the order is always defined.
func byFloat[T any](field func(T) float64) Comparator[T] {
	return func(a, b T) int {
		x, y := field(a), field(b)
		switch {
		case math.IsNaN(x) && math.IsNaN(y):
			return 0
		case math.IsNaN(x):
			return 1
		case math.IsNaN(y):
			return -1
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
}

// Sort orders rows by the named column. The key is matched
// case-insensitively against the variant's column table; an unknown key
// returns the rows unchanged. The sort is stable, and descending order is
// the ascending comparator reversed.
func Sort[T any](rows []T, ascending bool, key string, columns Columns[T]) []T {
	cmp, ok := columns[strings.ToUpper(key)]
	if !ok {
		return rows
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(rows[i], rows[j])
		if ascending {
			return c < 0
		}
		return c > 0
	})
	return rows
}

// LoanColumns binds every sortable loan column to its comparator.
var LoanColumns = Columns[LoanRow]{
	"ID":                  byString(func(r LoanRow) string { return r.ID }),
	"COUNTERPARTY":        byString(func(r LoanRow) string { return r.Counterparty }),
	"CURRENCY":            byString(func(r LoanRow) string { return r.Currency }),
	"PRINCIPAL":           byFloat(func(r LoanRow) float64 { return r.PrincipalAmount }),
	"COLLATERAL CURRENCY": byString(func(r LoanRow) string { return r.CollateralCcy }),
	"COLLATERAL":          byFloat(func(r LoanRow) float64 { return r.CollateralAmt }),
	"LOAN TO VALUE":       byFloat(func(r LoanRow) float64 { return r.LoanToValue }),
	"INTEREST RATE":       byFloat(func(r LoanRow) float64 { return r.InterestRate }),
	"STATUS":              byString(func(r LoanRow) string { return r.Status }),
	"DATE CREATED":        byString(func(r LoanRow) string { return r.DateCreated }),
	"MATURITY DATE":       byString(func(r LoanRow) string { return r.MaturityDate }),
}

// TransferColumns binds every sortable transfer column to its comparator.
var TransferColumns = Columns[TransferRow]{
	"ID":           byString(func(r TransferRow) string { return r.ID }),
	"COUNTERPARTY": byString(func(r TransferRow) string { return r.Counterparty }),
	"CURRENCY":     byString(func(r TransferRow) string { return r.Currency }),
	"AMOUNT":       byFloat(func(r TransferRow) float64 { return r.AmountValue }),
	"DIRECTION":    byString(func(r TransferRow) string { return r.Direction }),
	"STATUS":       byString(func(r TransferRow) string { return r.Status }),
	"TX HASH":      byString(func(r TransferRow) string { return r.TxHash }),
	"DATE CREATED": byString(func(r TransferRow) string { return r.DateCreated }),
}

// QuoteColumns binds every sortable quote column to its comparator.
var QuoteColumns = Columns[QuoteRow]{
	"ID":           byString(func(r QuoteRow) string { return r.ID }),
	"COUNTERPARTY": byString(func(r QuoteRow) string { return r.Counterparty }),
	"PAIR":         byString(func(r QuoteRow) string { return r.Pair }),
	"SIDE":         byString(func(r QuoteRow) string { return r.Side }),
	"PRICE":        byFloat(func(r QuoteRow) float64 { return r.Price }),
	"NOTIONAL":     byFloat(func(r QuoteRow) float64 { return r.NotionalValue }),
	"STATUS":       byString(func(r QuoteRow) string { return r.Status }),
	"DATE CREATED": byString(func(r QuoteRow) string { return r.DateCreated }),
	"DATE EXPIRES": byString(func(r QuoteRow) string { return r.DateExpires }),
}
