package pricer

// ScenarioRequest is one per-position leg of a risk batch. ReqID carries the
// source position's identifier as a string so it survives the round trip
// through the pricing engine and correlation can match results back.
type ScenarioRequest struct {
	ReqID           string  `json:"req_id"`
	Side            string  `json:"side"`
	OptionKind      string  `json:"option_kind,omitempty"`
	Quantity        float64 `json:"quantity"`
	Strike          float64 `json:"strike"`
	TimeToExpiry    float64 `json:"time_to_expiry"` // year fraction
	Premium         float64 `json:"premium"`
	Spot            float64 `json:"spot"`
	DomesticRate    float64 `json:"domestic_rate"`
	ForeignRateBump float64 `json:"foreign_rate_bump"`
	ImpliedVol      float64 `json:"implied_vol"`
	Expiry          string  `json:"expiry"` // echoed through unchanged
}

// BatchRequest bundles per-position scenario legs with the shared spot-bump
// scenario. Bump parameters apply to the whole batch, never per position.
type BatchRequest struct {
	Spot      float64           `json:"spot"`
	SpotBump  float64           `json:"spot_bump"`
	BumpSteps int               `json:"bump_steps"`
	Positions []ScenarioRequest `json:"positions"`
}

// PositionResult is the pricer's answer for one scenario leg.
type PositionResult struct {
	ReqID         string  `json:"req_id"`
	Pnl           float64 `json:"pnl"`
	PnlPercentage float64 `json:"pnl_percentage"`
}

// BatchResponse is the pricer's answer for a whole batch. The result set may
// cover fewer positions than were requested.
type BatchResponse struct {
	Positions []PositionResult `json:"positions"`
}
