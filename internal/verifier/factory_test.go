package verifier_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarlink/internal/config"
	"scholarlink/internal/domain"
	"scholarlink/internal/port"
	"scholarlink/internal/verifier"
)

func TestFactory_NoCredential_SelectsSimulated(t *testing.T) {
	v, err := verifier.NewFromConfig(&config.VerifierConfig{Provider: "nonexistent-provider-xyz"})

	require.NoError(t, err)
	sim, ok := v.(*verifier.Simulated)
	require.True(t, ok)
	assert.Equal(t, verifier.DefaultSimulatedDelay, sim.Delay())
}

func TestFactory_NoCredential_CustomDelay(t *testing.T) {
	v, err := verifier.NewFromConfig(&config.VerifierConfig{SimulatedDelay: 5 * time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, v.(*verifier.Simulated).Delay())
}

func TestFactory_WithCredential_UsesRegisteredProvider(t *testing.T) {
	verifier.RegisterProvider("test-provider", func(cfg *config.VerifierConfig) (port.DocumentVerifier, error) {
		return &stubVerifier{key: cfg.APIKey}, nil
	})

	v, err := verifier.NewFromConfig(&config.VerifierConfig{Provider: "test-provider", APIKey: "k"})

	require.NoError(t, err)
	assert.Equal(t, "stub", v.Name())
	assert.Equal(t, "k", v.(*stubVerifier).key)
}

func TestFactory_WithCredential_UnknownProviderIsError(t *testing.T) {
	v, err := verifier.NewFromConfig(&config.VerifierConfig{Provider: "nonexistent-provider-xyz", APIKey: "k"})

	assert.Nil(t, v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown verifier provider")
}

type stubVerifier struct {
	key string
}

func (s *stubVerifier) Name() string { return "stub" }

func (s *stubVerifier) Verify(context.Context, domain.VerificationRequest) (*domain.VerificationResult, error) {
	return &domain.VerificationResult{IsValid: true, Percentage: 50, Reason: "stub"}, nil
}
