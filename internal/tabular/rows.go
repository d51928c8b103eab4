// Package tabular turns domain records into the flat, display-ready rows the
// dashboard tables consume, and gives those rows uniform sorting and CSV
// export. Rows are created fresh on every extraction and never mutated.
package tabular

import "strconv"

// LoanRow is the display form of a loan. Monetary fields carry both the
// formatted string shown in the table and the raw amount used for numeric
// sorting.
type LoanRow struct {
	ID              string  `json:"id"`
	Counterparty    string  `json:"counterparty"`
	Currency        string  `json:"currency"`
	Principal       string  `json:"principal"`
	PrincipalAmount float64 `json:"principal_amount"`
	Collateral      string  `json:"collateral"`
	CollateralCcy   string  `json:"collateral_currency"`
	CollateralAmt   float64 `json:"collateral_amount"`
	LoanToValue     float64 `json:"loan_to_value"`
	InterestRate    float64 `json:"interest_rate"`
	Status          string  `json:"status"`
	DateCreated     string  `json:"date_created"`
	MaturityDate    string  `json:"maturity_date"`
}

// LoanHeader is the CSV header for loan exports, in column order.
var LoanHeader = []string{
	"ID", "COUNTERPARTY", "CURRENCY", "PRINCIPAL", "COLLATERAL CURRENCY",
	"COLLATERAL", "LOAN TO VALUE", "INTEREST RATE", "STATUS", "DATE CREATED",
	"MATURITY DATE",
}

// Fields returns the row's CSV cells in LoanHeader order.
func (r LoanRow) Fields() []string {
	return []string{
		r.ID, r.Counterparty, r.Currency, r.Principal, r.CollateralCcy,
		r.Collateral, formatFloat(r.LoanToValue), formatFloat(r.InterestRate),
		r.Status, r.DateCreated, r.MaturityDate,
	}
}

// TransferRow is the display form of a wallet transfer.
type TransferRow struct {
	ID           string  `json:"id"`
	Counterparty string  `json:"counterparty"`
	Currency     string  `json:"currency"`
	Amount       string  `json:"amount"`
	AmountValue  float64 `json:"amount_value"`
	Direction    string  `json:"direction"`
	Status       string  `json:"status"`
	TxHash       string  `json:"tx_hash"`
	DateCreated  string  `json:"date_created"`
}

// TransferHeader is the CSV header for transfer exports, in column order.
var TransferHeader = []string{
	"ID", "COUNTERPARTY", "CURRENCY", "AMOUNT", "DIRECTION", "STATUS",
	"TX HASH", "DATE CREATED",
}

// Fields returns the row's CSV cells in TransferHeader order.
func (r TransferRow) Fields() []string {
	return []string{
		r.ID, r.Counterparty, r.Currency, r.Amount, r.Direction, r.Status,
		r.TxHash, r.DateCreated,
	}
}

// QuoteRow is the display form of an RFQ quote.
type QuoteRow struct {
	ID            string  `json:"id"`
	Counterparty  string  `json:"counterparty"`
	Pair          string  `json:"pair"`
	Side          string  `json:"side"`
	Price         float64 `json:"price"`
	Notional      string  `json:"notional"`
	NotionalValue float64 `json:"notional_value"`
	Status        string  `json:"status"`
	DateCreated   string  `json:"date_created"`
	DateExpires   string  `json:"date_expires"`
}

// QuoteHeader is the CSV header for quote exports, in column order.
var QuoteHeader = []string{
	"ID", "COUNTERPARTY", "PAIR", "SIDE", "PRICE", "NOTIONAL", "STATUS",
	"DATE CREATED", "DATE EXPIRES",
}

// Fields returns the row's CSV cells in QuoteHeader order.
func (r QuoteRow) Fields() []string {
	return []string{
		r.ID, r.Counterparty, r.Pair, r.Side, formatFloat(r.Price),
		r.Notional, r.Status, r.DateCreated, r.DateExpires,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
