package verifier

import (
	"context"
	"time"

	"scholarlink/internal/domain"
)

// ProviderSimulated is the name reported by the offline verifier.
const ProviderSimulated = "simulated"

// DefaultSimulatedDelay mimics the latency of a real verification call.
const DefaultSimulatedDelay = 2 * time.Second

// SimulatedResult is the canned verdict returned when no credential is configured.
func SimulatedResult() domain.VerificationResult {
	return domain.VerificationResult{
		IsValid:     true,
		Percentage:  86.5,
		StudentName: "Detected Student Name",
		Reason:      "Document appears to be a valid original mark sheet with no signs of tampering.",
	}
}

// Simulated is an offline DocumentVerifier for demos. It never touches the network.
type Simulated struct {
	delay time.Duration
}

// NewSimulated creates a Simulated verifier. A non-positive delay means DefaultSimulatedDelay.
func NewSimulated(delay time.Duration) *Simulated {
	if delay <= 0 {
		delay = DefaultSimulatedDelay
	}
	return &Simulated{delay: delay}
}

func (s *Simulated) Name() string { return ProviderSimulated }

// Delay reports how long each call waits before answering.
func (s *Simulated) Delay() time.Duration { return s.delay }

func (s *Simulated) Verify(ctx context.Context, _ domain.VerificationRequest) (*domain.VerificationResult, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	out := SimulatedResult()
	return &out, nil
}
