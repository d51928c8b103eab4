package tabular

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loanFixture() []LoanRow {
	return []LoanRow{
		{ID: "a", Counterparty: "ZETA", PrincipalAmount: 300, Status: "open", DateCreated: "2024-03-01 09:00:00"},
		{ID: "b", Counterparty: "ACME", PrincipalAmount: 100, Status: "open", DateCreated: "2024-01-15 09:00:00"},
		{ID: "c", Counterparty: "ACME", PrincipalAmount: 200, Status: "repaid", DateCreated: "2024-02-20 09:00:00"},
	}
}

func ids(rows []LoanRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestSortNumericColumn(t *testing.T) {
	rows := Sort(loanFixture(), true, "PRINCIPAL", LoanColumns)
	assert.Equal(t, []string{"b", "c", "a"}, ids(rows))

	rows = Sort(loanFixture(), false, "PRINCIPAL", LoanColumns)
	assert.Equal(t, []string{"a", "c", "b"}, ids(rows))
}

func TestSortStringColumn(t *testing.T) {
	rows := Sort(loanFixture(), true, "DATE CREATED", LoanColumns)
	assert.Equal(t, []string{"b", "c", "a"}, ids(rows))
}

func TestSortKeyIsCaseInsensitive(t *testing.T) {
	upper := Sort(loanFixture(), true, "LOAN TO VALUE", LoanColumns)
	lower := Sort(loanFixture(), true, "loan to value", LoanColumns)
	assert.Equal(t, ids(upper), ids(lower))
}

func TestSortUnknownKeyIsIdentity(t *testing.T) {
	original := loanFixture()
	rows := Sort(loanFixture(), true, "NO SUCH COLUMN", LoanColumns)
	assert.Equal(t, ids(original), ids(rows))

	rows = Sort(loanFixture(), false, "", LoanColumns)
	assert.Equal(t, ids(original), ids(rows))
}

func TestSortIsStable(t *testing.T) {
	// b and c share the counterparty; their relative order must survive
	// sorting by it, in both directions.
	rows := Sort(loanFixture(), true, "COUNTERPARTY", LoanColumns)
	assert.Equal(t, []string{"b", "c", "a"}, ids(rows))

	rows = Sort(rows, false, "COUNTERPARTY", LoanColumns)
	assert.Equal(t, []string{"a", "b", "c"}, ids(rows))
}

func TestSortDoubleApplicationReverses(t *testing.T) {
	asc := Sort(loanFixture(), true, "PRINCIPAL", LoanColumns)
	desc := Sort(append([]LoanRow(nil), asc...), false, "PRINCIPAL", LoanColumns)

	require.Equal(t, len(asc), len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortNaNSortsLast(t *testing.T) {
	rows := []LoanRow{
		{ID: "nan", LoanToValue: math.NaN()},
		{ID: "low", LoanToValue: 0.1},
		{ID: "high", LoanToValue: 0.9},
	}

	sorted := Sort(rows, true, "LOAN TO VALUE", LoanColumns)
	assert.Equal(t, []string{"low", "high", "nan"}, ids(sorted))
}

func TestSortAllKnownLoanColumns(t *testing.T) {
	// Every declared column must sort without touching row contents.
	for key := range LoanColumns {
		rows := Sort(loanFixture(), true, key, LoanColumns)
		assert.Len(t, rows, 3, "column %q", key)
	}
}

func TestSortTransferAndQuoteColumns(t *testing.T) {
	transfers := []TransferRow{
		{ID: "t1", AmountValue: 5, Status: "confirmed"},
		{ID: "t2", AmountValue: 1, Status: "pending"},
	}
	sorted := Sort(transfers, true, "AMOUNT", TransferColumns)
	assert.Equal(t, "t2", sorted[0].ID)

	quotes := []QuoteRow{
		{ID: "q1", Price: 20000},
		{ID: "q2", Price: 19000},
	}
	sortedQuotes := Sort(quotes, false, "PRICE", QuoteColumns)
	assert.Equal(t, "q1", sortedQuotes[0].ID)
}
