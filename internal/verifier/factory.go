package verifier

import (
	"fmt"
	"log"
	"sync"

	"scholarlink/internal/config"
	"scholarlink/internal/port"
)

// ProviderFactory is a function that creates a DocumentVerifier from the verifier config.
type ProviderFactory func(cfg *config.VerifierConfig) (port.DocumentVerifier, error)

var (
	providersMu sync.RWMutex
	providers   = map[string]ProviderFactory{}
)

// RegisterProvider registers a credentialed verification provider by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providersMu.Lock()
	defer providersMu.Unlock()
	providers[name] = factory
}

// NewFromConfig picks the verification strategy.
// Without a credential the simulated verifier is used; with one, the named
// provider is required and the simulated verifier is never substituted.
func NewFromConfig(cfg *config.VerifierConfig) (port.DocumentVerifier, error) {
	if cfg.APIKey == "" {
		log.Printf("verifier.NewFromConfig: no API key configured, using simulated verifier (delay %s)", effectiveDelay(cfg))
		return NewSimulated(cfg.SimulatedDelay), nil
	}

	providersMu.RLock()
	factory, ok := providers[cfg.Provider]
	providersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown verifier provider: %q", cfg.Provider)
	}
	return factory(cfg)
}

func effectiveDelay(cfg *config.VerifierConfig) string {
	if cfg.SimulatedDelay <= 0 {
		return DefaultSimulatedDelay.String()
	}
	return cfg.SimulatedDelay.String()
}
