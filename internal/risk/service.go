package risk

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/meridianfx/deskd/internal/pricer"
	"github.com/meridianfx/deskd/pkg/metrics"
	"github.com/meridianfx/deskd/pkg/models"
)

// PositionSource fetches a counterparty's open positions.
type PositionSource interface {
	OpenPositions(ctx context.Context, counterparty, pair, token string) ([]models.Position, error)
}

// Pricer runs a scenario batch through the pricing engine.
type Pricer interface {
	Price(ctx context.Context, batch pricer.BatchRequest, token string) (*pricer.BatchResponse, error)
}

// Service is the position risk pipeline: fetch, build, price, correlate.
// It holds no mutable state; every invocation is independent.
type Service struct {
	positions PositionSource
	pricer    Pricer
	logger    *zap.Logger

	// Clock is injectable for deterministic time-to-expiry in tests.
	Clock func() time.Time
}

// NewService creates a risk pipeline service.
func NewService(positions PositionSource, pr Pricer, logger *zap.Logger) *Service {
	return &Service{
		positions: positions,
		pricer:    pr,
		logger:    logger,
		Clock:     time.Now,
	}
}

// EnrichedPositions returns the counterparty's open positions for a pair with
// live PnL merged on where the pricer covered them.
//
// The pipeline fails as a unit if the fetch or the pricer call fails. A
// pricer response covering fewer positions than requested is not a failure;
// uncovered positions come back with nil PnL fields. An empty position list
// skips the pricer call entirely.
func (s *Service) EnrichedPositions(ctx context.Context, counterparty, pair, token string) ([]models.Position, error) {
	timer := prometheus.NewTimer(metrics.RiskPipelineLatency)
	defer timer.ObserveDuration()

	positions, err := s.positions.OpenPositions(ctx, counterparty, pair, token)
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return positions, nil
	}

	// The batch's shared spot is the freshest spot reference in the fetch,
	// which is the first position since the fetch sorts by descending expiry
	// and every position carries the same pair's spot.
	batch := BuildBatch(positions, positions[0].Spot, s.Clock())

	resp, err := s.pricer.Price(ctx, batch, token)
	if err != nil {
		return nil, err
	}

	enriched := Correlate(positions, resp, s.logger)
	s.logger.Debug("risk pipeline complete",
		zap.String("counterparty", counterparty),
		zap.String("pair", pair),
		zap.Int("positions", len(enriched)),
		zap.Int("priced", len(resp.Positions)))
	return enriched, nil
}
