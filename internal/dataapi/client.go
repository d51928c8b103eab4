// Package dataapi is the read-only client for the headless data API that owns
// all desk records. Every call is authenticated with the caller's bearer
// token; deskd holds no credentials of its own.
package dataapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/meridianfx/deskd/internal/auth"
	"github.com/meridianfx/deskd/internal/config"
	"github.com/meridianfx/deskd/pkg/errors"
	"github.com/meridianfx/deskd/pkg/metrics"
	"github.com/meridianfx/deskd/pkg/models"
)

// Client talks to the data API.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger

	// Clock is injectable so expiry checks and filters are deterministic in
	// tests. Defaults to time.Now.
	Clock func() time.Time
}

// NewClient creates a data API client.
func NewClient(cfg config.DataAPIConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		Clock:   time.Now,
	}
}

// envelope is the JSON wrapper every data API collection response uses.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, resource string, query url.Values, token string, out any) error {
	u := fmt.Sprintf("%s/%s", c.baseURL, resource)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, errors.KindTransport, "build data API request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.DataAPIRequests.WithLabelValues(resource, "error").Inc()
		return errors.Wrap(err, errors.KindTransport, fmt.Sprintf("data API %s", resource))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.DataAPIRequests.WithLabelValues(resource, "error").Inc()
		return errors.Newf(errors.KindTransport, "data API %s: status %d", resource, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.DataAPIRequests.WithLabelValues(resource, "error").Inc()
		return errors.Wrap(err, errors.KindTransport, fmt.Sprintf("decode data API %s", resource))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		metrics.DataAPIRequests.WithLabelValues(resource, "error").Inc()
		return errors.Wrap(err, errors.KindTransport, fmt.Sprintf("decode data API %s payload", resource))
	}
	metrics.DataAPIRequests.WithLabelValues(resource, "ok").Inc()
	return nil
}

// Loans lists all loans visible to the session.
func (c *Client) Loans(ctx context.Context, token string) ([]models.Loan, error) {
	var loans []models.Loan
	q := url.Values{}
	q.Set("sort", "created_at:desc")
	if err := c.get(ctx, "loans", q, token, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

// Transfers lists all wallet transfers visible to the session.
func (c *Client) Transfers(ctx context.Context, token string) ([]models.WalletTransfer, error) {
	var transfers []models.WalletTransfer
	q := url.Values{}
	q.Set("sort", "created_at:desc")
	if err := c.get(ctx, "wallet-transfers", q, token, &transfers); err != nil {
		return nil, err
	}
	return transfers, nil
}

// Quotes lists all RFQ quotes visible to the session.
func (c *Client) Quotes(ctx context.Context, token string) ([]models.Quote, error) {
	var quotes []models.Quote
	q := url.Values{}
	q.Set("sort", "created_at:desc")
	if err := c.get(ctx, "quotes", q, token, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Currencies lists reference-data currencies with their display scales.
func (c *Client) Currencies(ctx context.Context, token string) ([]models.Currency, error) {
	var currencies []models.Currency
	if err := c.get(ctx, "currencies", nil, token, &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// OpenPositions returns the counterparty's currently-open positions for a
// pair, newest expiry first.
//
// An expired session answers an empty list without touching the network.
// The dashboard treats that the same as "no open positions"; the login flow
// is responsible for noticing the dead session.
func (c *Client) OpenPositions(ctx context.Context, counterparty, pair, token string) ([]models.Position, error) {
	session, err := auth.ParseSession(token)
	if err != nil {
		return nil, err
	}
	now := c.Clock()
	if session.Expired(now) {
		metrics.AuthExpiredShortCircuits.Inc()
		c.logger.Debug("session expired, skipping position fetch",
			zap.String("counterparty", counterparty),
			zap.String("pair", pair))
		return []models.Position{}, nil
	}

	q := url.Values{}
	q.Set("filter[counterparty]", counterparty)
	q.Set("filter[pair]", pair)
	q.Set("filter[activity]", "open")
	q.Set("filter[expiry][gte]", now.UTC().Format(time.RFC3339))
	q.Set("sort", "expiry:desc")

	var positions []models.Position
	if err := c.get(ctx, "positions", q, token, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}
