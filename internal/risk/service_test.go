package risk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/meridianfx/deskd/internal/pricer"
	"github.com/meridianfx/deskd/pkg/errors"
	"github.com/meridianfx/deskd/pkg/models"
)

type stubPositions struct {
	positions []models.Position
	err       error
	calls     int
}

func (s *stubPositions) OpenPositions(ctx context.Context, counterparty, pair, token string) ([]models.Position, error) {
	s.calls++
	return s.positions, s.err
}

type stubPricer struct {
	resp  *pricer.BatchResponse
	err   error
	calls int
	batch pricer.BatchRequest
}

func (s *stubPricer) Price(ctx context.Context, batch pricer.BatchRequest, token string) (*pricer.BatchResponse, error) {
	s.calls++
	s.batch = batch
	return s.resp, s.err
}

func newTestService(t *testing.T, positions *stubPositions, pr *stubPricer) *Service {
	svc := NewService(positions, pr, zaptest.NewLogger(t))
	svc.Clock = func() time.Time {
		return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestEnrichedPositionsEndToEnd(t *testing.T) {
	source := &stubPositions{positions: []models.Position{
		{ID: 7, Side: models.SideBuy, Strike: 100, Expiry: "2025-01-01T00:00:00Z", Quantity: 2, Premium: 5, Spot: 110},
	}}
	pr := &stubPricer{resp: &pricer.BatchResponse{
		Positions: []pricer.PositionResult{{ReqID: "7", Pnl: 12.5, PnlPercentage: 0.25}},
	}}

	svc := newTestService(t, source, pr)
	enriched, err := svc.EnrichedPositions(context.Background(), "ACME", "BTC/USD", "token")

	require.NoError(t, err)
	require.Len(t, enriched, 1)
	require.NotNil(t, enriched[0].LivePnl)
	assert.Equal(t, 12.5, *enriched[0].LivePnl)
	assert.Equal(t, 0.25, *enriched[0].LivePnlPct)

	// The batch the pricer saw carries the shared scenario and the leg.
	assert.Equal(t, 110.0, pr.batch.Spot)
	assert.Equal(t, 0.05, pr.batch.SpotBump)
	assert.Equal(t, 3, pr.batch.BumpSteps)
	require.Len(t, pr.batch.Positions, 1)
	assert.Equal(t, "7", pr.batch.Positions[0].ReqID)
	assert.Equal(t, 2.0, pr.batch.Positions[0].Quantity)
	assert.Equal(t, 5.0, pr.batch.Positions[0].Premium)
}

func TestEnrichedPositionsEmptySkipsPricer(t *testing.T) {
	source := &stubPositions{positions: []models.Position{}}
	pr := &stubPricer{}

	svc := newTestService(t, source, pr)
	enriched, err := svc.EnrichedPositions(context.Background(), "ACME", "BTC/USD", "token")

	require.NoError(t, err)
	assert.Empty(t, enriched)
	assert.Equal(t, 0, pr.calls)
}

func TestEnrichedPositionsFetchFailureAborts(t *testing.T) {
	source := &stubPositions{err: errors.New(errors.KindTransport, "data API down")}
	pr := &stubPricer{}

	svc := newTestService(t, source, pr)
	_, err := svc.EnrichedPositions(context.Background(), "ACME", "BTC/USD", "token")

	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindTransport))
	assert.Equal(t, 0, pr.calls)
}

func TestEnrichedPositionsPricerFailureAborts(t *testing.T) {
	source := &stubPositions{positions: []models.Position{{ID: 1, Expiry: "2025-01-01T00:00:00Z"}}}
	pr := &stubPricer{err: errors.New(errors.KindTransport, "pricer down")}

	svc := newTestService(t, source, pr)
	_, err := svc.EnrichedPositions(context.Background(), "ACME", "BTC/USD", "token")

	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindTransport))
	assert.Equal(t, 1, pr.calls)
}
