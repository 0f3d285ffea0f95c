package data

import (
	"context"
	"errors"
	"time"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

var (
	// ErrProviderNotConnected is returned when operations are attempted on a disconnected provider
	ErrProviderNotConnected = errors.New("provider is not connected")
	// ErrProviderAlreadyConnected is returned when attempting to connect an already connected provider
	ErrProviderAlreadyConnected = errors.New("provider is already connected")
	// ErrInvalidSymbol is returned when an invalid symbol is provided
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidRange is returned when the requested date range is empty or inverted
	ErrInvalidRange = errors.New("invalid date range")
)

// Provider defines the interface for daily market data providers. Symbol
// resolution, network retries and timezone normalization are the provider's
// responsibility; the series it returns satisfies PriceSeries.Validate.
type Provider interface {
	// Connect establishes a connection to the market data provider
	Connect(ctx context.Context) error

	// FetchDaily fetches the daily bars for a symbol over [from, to],
	// ascending by date, weekends and market holidays omitted
	FetchDaily(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error)

	// Close closes the connection to the provider
	Close() error

	// IsConnected returns whether the provider is currently connected
	IsConnected() bool

	// GetName returns the name/type of the provider (e.g., "mock")
	GetName() string
}

// ProviderConfig holds configuration for a provider
type ProviderConfig struct {
	APIKey  string
	BaseURL string

	// Seed makes the mock provider deterministic when non-zero
	Seed int64
}

// ProviderFactory creates provider instances by registered type name
type ProviderFactory struct {
	factories map[string]func(ProviderConfig) (Provider, error)
}

// NewProviderFactory creates a new provider factory with the built-in
// providers registered
func NewProviderFactory() *ProviderFactory {
	factory := &ProviderFactory{
		factories: make(map[string]func(ProviderConfig) (Provider, error)),
	}

	factory.RegisterProvider("mock", NewMockProvider)

	return factory
}

// CreateProvider creates a new provider instance
func (f *ProviderFactory) CreateProvider(providerType string, config ProviderConfig) (Provider, error) {
	factoryFunc, exists := f.factories[providerType]
	if !exists {
		return nil, errors.New("unknown provider type: " + providerType)
	}

	return factoryFunc(config)
}

// RegisterProvider registers a custom provider factory function
func (f *ProviderFactory) RegisterProvider(providerType string, factoryFunc func(ProviderConfig) (Provider, error)) error {
	if _, exists := f.factories[providerType]; exists {
		return errors.New("provider type already registered: " + providerType)
	}
	f.factories[providerType] = factoryFunc
	return nil
}

// ListProviders returns a list of available provider types
func (f *ProviderFactory) ListProviders() []string {
	providers := make([]string, 0, len(f.factories))
	for providerType := range f.factories {
		providers = append(providers, providerType)
	}
	return providers
}
