package data

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// MockProvider generates a deterministic random-walk daily history for any
// symbol. The walk is seeded per symbol, so repeated fetches of the same
// range return identical bars.
type MockProvider struct {
	name      string
	config    ProviderConfig
	connected bool
	mu        sync.RWMutex
}

// NewMockProvider creates a new mock provider
func NewMockProvider(config ProviderConfig) (Provider, error) {
	return &MockProvider{
		name:   "mock",
		config: config,
	}, nil
}

// Connect establishes a connection (mock - always succeeds)
func (m *MockProvider) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return ErrProviderAlreadyConnected
	}

	m.connected = true
	return nil
}

// FetchDaily generates daily bars for the symbol over [from, to], skipping
// weekends.
func (m *MockProvider) FetchDaily(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error) {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()

	if !connected {
		return nil, ErrProviderNotConnected
	}
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(m.seedFor(symbol)))
	price := 50.0 + rng.Float64()*200.0

	series := make(models.PriceSeries, 0, 256)
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	for !day.After(end) {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			open := price * (1 + (rng.Float64()-0.5)*0.01)
			close := price * (1 + (rng.Float64()-0.5)*0.04)
			high := math.Max(open, close) * (1 + rng.Float64()*0.01)
			low := math.Min(open, close) * (1 - rng.Float64()*0.01)

			series = append(series, models.DailyBar{
				Date:   day,
				Open:   open,
				High:   high,
				Low:    low,
				Close:  close,
				Volume: int64(1_000_000 + rng.Intn(9_000_000)),
			})
			price = close
		}
		day = day.AddDate(0, 0, 1)
	}

	return series, nil
}

// seedFor derives a per-symbol seed so different symbols get different walks
func (m *MockProvider) seedFor(symbol string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(symbol))
	seed := int64(h.Sum64())
	if m.config.Seed != 0 {
		seed ^= m.config.Seed
	}
	return seed
}

// Close closes the connection
func (m *MockProvider) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}

// IsConnected returns whether the provider is connected
func (m *MockProvider) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.connected
}

// GetName returns the provider name
func (m *MockProvider) GetName() string {
	return m.name
}
