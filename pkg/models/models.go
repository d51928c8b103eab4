// Package models holds the domain entities served by the desk back office.
// Records originate in the headless data API; deskd never writes them back.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Trade side constants
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// Option kind constants
const (
	OptionCall = "call"
	OptionPut  = "put"
)

// Loan status constants
const (
	LoanStatusOpen      = "open"
	LoanStatusRepaid    = "repaid"
	LoanStatusDefaulted = "defaulted"
)

// Transfer status constants
const (
	TransferStatusPending   = "pending"
	TransferStatusConfirmed = "confirmed"
	TransferStatusFailed    = "failed"
)

// Quote status constants
const (
	QuoteStatusRequested = "requested"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusDealt     = "dealt"
	QuoteStatusExpired   = "expired"
)

// Currency is a reference-data currency with its display scale.
// DisplayScale is the number of fractional digits amounts are rounded and
// padded to when rendered (0 for JPY-style, 2 for USD, 8 for BTC).
type Currency struct {
	ID           uuid.UUID `json:"id"`
	Ticker       string    `json:"ticker"`
	Name         string    `json:"name"`
	DisplayScale int       `json:"display_scale"`
}

// Pair is a tradable currency pair.
type Pair struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"` // e.g. "BTC/USD"
	Base  Currency  `json:"base"`
	Quote Currency  `json:"quote"`
}

// Counterparty is a desk client.
type Counterparty struct {
	ID     uuid.UUID `json:"id"`
	Ticker string    `json:"ticker"`
	Name   string    `json:"name"`
}

// Loan is a collateralized loan booked against a counterparty.
type Loan struct {
	ID                 uuid.UUID    `json:"id"`
	Counterparty       Counterparty `json:"counterparty"`
	Currency           Currency     `json:"currency"`
	Principal          float64      `json:"principal"`
	CollateralCurrency Currency     `json:"collateral_currency"`
	Collateral         float64      `json:"collateral"`
	LoanToValue        float64      `json:"loan_to_value"`
	InterestRate       float64      `json:"interest_rate"`
	Status             string       `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	MaturesAt          time.Time    `json:"matures_at"`
}

// WalletTransfer is an on-chain deposit or withdrawal for a counterparty.
type WalletTransfer struct {
	ID           uuid.UUID    `json:"id"`
	Counterparty Counterparty `json:"counterparty"`
	Currency     Currency     `json:"currency"`
	Amount       float64      `json:"amount"`
	Direction    string       `json:"direction"` // deposit, withdrawal
	Status       string       `json:"status"`
	TxHash       string       `json:"tx_hash"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Quote is an RFQ quote issued to a counterparty.
type Quote struct {
	ID           uuid.UUID    `json:"id"`
	Counterparty Counterparty `json:"counterparty"`
	Pair         Pair         `json:"pair"`
	Side         string       `json:"side"`
	Price        float64      `json:"price"`
	Notional     float64      `json:"notional"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

// Position is an open option position as returned by the data API.
//
// LivePnl and LivePnlPercent start nil and are populated only by the risk
// pipeline when the pricing engine returns a result for the position. A
// position the pricer did not cover keeps them nil; that is not an error.
type Position struct {
	ID           int64    `json:"id"`
	Counterparty string   `json:"counterparty"`
	Pair         string   `json:"pair"`
	Side         string   `json:"side"`
	OptionKind   string   `json:"option_kind,omitempty"` // call, put; empty for linear
	Quantity     float64  `json:"quantity"`
	Strike       float64  `json:"strike"`
	Expiry       string   `json:"expiry"` // ISO-8601, UTC
	Premium      float64  `json:"premium"`
	Spot         float64  `json:"spot"`
	DomesticRate float64  `json:"domestic_rate"`
	ForeignRate  float64  `json:"foreign_rate"`
	ImpliedVol   float64  `json:"implied_vol"`
	LivePnl      *float64 `json:"live_pnl,omitempty"`
	LivePnlPct   *float64 `json:"live_pnl_percentage,omitempty"`
}
