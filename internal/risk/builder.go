// Package risk turns open positions into pricing-engine scenario batches and
// merges the results back on.
package risk

import (
	"math"
	"strconv"
	"time"

	"github.com/meridianfx/deskd/internal/pricer"
	"github.com/meridianfx/deskd/pkg/models"
)

// Shared scenario parameters. The desk prices every batch with the same
// spot perturbation: a 5% bump applied over 3 steps.
const (
	SpotBump  = 0.05
	BumpSteps = 3
)

const hoursPerYear = 365 * 24

// yearFraction converts the remaining life of a position into a fraction of a
// year. Expired-but-still-open positions clamp to zero so the batch stays
// priceable; an unparseable expiry counts as already expired.
func yearFraction(expiry string, now time.Time) float64 {
	t, err := time.Parse(time.RFC3339, expiry)
	if err != nil {
		return 0
	}
	frac := t.Sub(now).Hours() / hoursPerYear
	if frac < 0 {
		return 0
	}
	return frac
}

// BuildBatch constructs one scenario leg per position, in position order,
// bundled with the shared spot-bump scenario. Quantity and premium enter as
// absolute values regardless of the sign convention the data API uses.
func BuildBatch(positions []models.Position, spot float64, now time.Time) pricer.BatchRequest {
	legs := make([]pricer.ScenarioRequest, 0, len(positions))
	for _, p := range positions {
		legs = append(legs, pricer.ScenarioRequest{
			ReqID:           strconv.FormatInt(p.ID, 10),
			Side:            p.Side,
			OptionKind:      p.OptionKind,
			Quantity:        math.Abs(p.Quantity),
			Strike:          p.Strike,
			TimeToExpiry:    yearFraction(p.Expiry, now),
			Premium:         math.Abs(p.Premium),
			Spot:            p.Spot,
			DomesticRate:    p.DomesticRate,
			ForeignRateBump: 0.0,
			ImpliedVol:      p.ImpliedVol,
			Expiry:          p.Expiry,
		})
	}
	return pricer.BatchRequest{
		Spot:      spot,
		SpotBump:  SpotBump,
		BumpSteps: BumpSteps,
		Positions: legs,
	}
}
