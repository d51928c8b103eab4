package tabular

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianfx/deskd/pkg/models"
)

// timestampLayout is the fixed-width form all table timestamps render in.
const timestampLayout = "2006-01-02 15:04:05"

// defaultScale applies when a currency has no configured display scale.
const defaultScale = 2

// Formatter carries the viewer-dependent rendering state: the viewer's
// timezone and the per-currency display scales from reference data. A
// Formatter is a pure value; extraction with an identical Formatter and input
// yields byte-identical rows.
type Formatter struct {
	Location *time.Location
	Scales   map[string]int
}

// NewFormatter creates a Formatter. A nil location renders in UTC.
func NewFormatter(loc *time.Location, scales map[string]int) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{Location: loc, Scales: scales}
}

// Amount rounds and pads v to the currency's display scale.
func (f Formatter) Amount(v float64, ticker string) string {
	scale, ok := f.Scales[ticker]
	if !ok {
		scale = defaultScale
	}
	return decimal.NewFromFloat(v).StringFixed(int32(scale))
}

// Timestamp renders a UTC instant in the viewer's zone, fixed width.
func (f Formatter) Timestamp(t time.Time) string {
	return t.In(f.Location).Format(timestampLayout)
}

// ExtractLoans maps loans to display rows, applying the optional filter
// first. Nested currency and counterparty references flatten to tickers.
func ExtractLoans(loans []models.Loan, f Formatter, filter func(models.Loan) bool) []LoanRow {
	rows := make([]LoanRow, 0, len(loans))
	for _, l := range loans {
		if filter != nil && !filter(l) {
			continue
		}
		rows = append(rows, LoanRow{
			ID:              l.ID.String(),
			Counterparty:    l.Counterparty.Ticker,
			Currency:        l.Currency.Ticker,
			Principal:       f.Amount(l.Principal, l.Currency.Ticker),
			PrincipalAmount: l.Principal,
			Collateral:      f.Amount(l.Collateral, l.CollateralCurrency.Ticker),
			CollateralCcy:   l.CollateralCurrency.Ticker,
			CollateralAmt:   l.Collateral,
			LoanToValue:     l.LoanToValue,
			InterestRate:    l.InterestRate,
			Status:          l.Status,
			DateCreated:     f.Timestamp(l.CreatedAt),
			MaturityDate:    f.Timestamp(l.MaturesAt),
		})
	}
	return rows
}

// ExtractTransfers maps wallet transfers to display rows, applying the
// optional filter first.
func ExtractTransfers(transfers []models.WalletTransfer, f Formatter, filter func(models.WalletTransfer) bool) []TransferRow {
	rows := make([]TransferRow, 0, len(transfers))
	for _, t := range transfers {
		if filter != nil && !filter(t) {
			continue
		}
		rows = append(rows, TransferRow{
			ID:           t.ID.String(),
			Counterparty: t.Counterparty.Ticker,
			Currency:     t.Currency.Ticker,
			Amount:       f.Amount(t.Amount, t.Currency.Ticker),
			AmountValue:  t.Amount,
			Direction:    t.Direction,
			Status:       t.Status,
			TxHash:       t.TxHash,
			DateCreated:  f.Timestamp(t.CreatedAt),
		})
	}
	return rows
}

// ExtractQuotes maps RFQ quotes to display rows, applying the optional
// filter first.
func ExtractQuotes(quotes []models.Quote, f Formatter, filter func(models.Quote) bool) []QuoteRow {
	rows := make([]QuoteRow, 0, len(quotes))
	for _, q := range quotes {
		if filter != nil && !filter(q) {
			continue
		}
		rows = append(rows, QuoteRow{
			ID:            q.ID.String(),
			Counterparty:  q.Counterparty.Ticker,
			Pair:          q.Pair.Name,
			Side:          q.Side,
			Price:         q.Price,
			Notional:      f.Amount(q.Notional, q.Pair.Quote.Ticker),
			NotionalValue: q.Notional,
			Status:        q.Status,
			DateCreated:   f.Timestamp(q.CreatedAt),
			DateExpires:   f.Timestamp(q.ExpiresAt),
		})
	}
	return rows
}
