package risk

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/meridianfx/deskd/internal/pricer"
	"github.com/meridianfx/deskd/pkg/models"
)

// Correlate merges pricer results onto positions by matching each result's
// req_id back to a position id. Positions the pricer did not cover keep nil
// PnL fields. Results with malformed req_ids, or ids that match no position,
// are dropped.
func Correlate(positions []models.Position, resp *pricer.BatchResponse, logger *zap.Logger) []models.Position {
	byID := make(map[int64]int, len(positions))
	for i, p := range positions {
		byID[p.ID] = i
	}

	for _, result := range resp.Positions {
		id, err := strconv.ParseInt(result.ReqID, 10, 64)
		if err != nil {
			logger.Warn("pricer returned unparseable req_id", zap.String("req_id", result.ReqID))
			continue
		}
		i, ok := byID[id]
		if !ok {
			logger.Warn("pricer returned unknown req_id", zap.Int64("req_id", id))
			continue
		}
		pnl := result.Pnl
		pct := result.PnlPercentage
		positions[i].LivePnl = &pnl
		positions[i].LivePnlPct = &pct
	}
	return positions
}
