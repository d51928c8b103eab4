package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/meridianfx/deskd/internal/config"
	"github.com/meridianfx/deskd/pkg/errors"
	"github.com/meridianfx/deskd/pkg/models"
)

type stubSource struct {
	currencies []models.Currency
	err        error
	calls      int
}

func (s *stubSource) Currencies(ctx context.Context, token string) ([]models.Currency, error) {
	s.calls++
	return s.currencies, s.err
}

func TestDisplayScalesWithoutRedis(t *testing.T) {
	source := &stubSource{currencies: []models.Currency{
		{ID: uuid.New(), Ticker: "USD", DisplayScale: 2},
		{ID: uuid.New(), Ticker: "BTC", DisplayScale: 8},
	}}
	rd := New(config.RedisConfig{Enabled: false}, source, zaptest.NewLogger(t))
	defer rd.Close()

	scales, err := rd.DisplayScales(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"USD": 2, "BTC": 8}, scales)
	assert.Equal(t, 1, source.calls)

	// With caching disabled every read goes to the source.
	_, err = rd.DisplayScales(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestDisplayScalesSourceFailurePropagates(t *testing.T) {
	source := &stubSource{err: errors.New(errors.KindTransport, "data API down")}
	rd := New(config.RedisConfig{Enabled: false}, source, zaptest.NewLogger(t))
	defer rd.Close()

	_, err := rd.DisplayScales(context.Background(), "token")

	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindTransport))
}
