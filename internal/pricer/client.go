// Package pricer is the client for the external pricing engine that runs
// spot-bump scenarios over open positions.
package pricer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/meridianfx/deskd/internal/config"
	"github.com/meridianfx/deskd/pkg/errors"
	"github.com/meridianfx/deskd/pkg/metrics"
)

// Client posts risk batches to the pricing engine.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient creates a pricing engine client.
func NewClient(cfg config.PricerConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type envelope struct {
	Data BatchResponse `json:"data"`
}

// Price runs one batch through the pricing engine. Transport and decode
// failures abort; a response covering fewer positions than requested is
// returned as-is and handled downstream.
func (c *Client) Price(ctx context.Context, batch BatchRequest, token string) (*BatchResponse, error) {
	body, err := json.Marshal(batch)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransport, "encode risk batch")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/risk/scenarios", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransport, "build pricer request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.PricerRequests.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, errors.KindTransport, "pricer call")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.PricerRequests.WithLabelValues("error").Inc()
		return nil, errors.Newf(errors.KindTransport, "pricer: status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.PricerRequests.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, errors.KindTransport, "decode pricer response")
	}
	metrics.PricerRequests.WithLabelValues("ok").Inc()

	if len(env.Data.Positions) < len(batch.Positions) {
		c.logger.Warn("pricer returned partial results",
			zap.Int("requested", len(batch.Positions)),
			zap.Int("returned", len(env.Data.Positions)))
	}
	return &env.Data, nil
}
