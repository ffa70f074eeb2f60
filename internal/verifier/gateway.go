package verifier

import (
	"context"
	"fmt"
	"log"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

// Gateway wraps a DocumentVerifier and guarantees a verdict.
// Any failure of the underlying strategy becomes domain.TechnicalErrorResult.
type Gateway struct {
	strategy port.DocumentVerifier
}

// NewGateway creates a Gateway around the given strategy.
func NewGateway(strategy port.DocumentVerifier) *Gateway {
	return &Gateway{strategy: strategy}
}

// Provider returns the name of the active strategy.
func (g *Gateway) Provider() string {
	return g.strategy.Name()
}

func (g *Gateway) Verify(ctx context.Context, req domain.VerificationRequest) domain.VerificationResult {
	out, err := g.verify(ctx, req)
	if err != nil {
		log.Printf("verifier.Gateway: %s verification failed for %q (%s, %d bytes): %v",
			g.strategy.Name(), req.FileName, req.ContentType, len(req.FileBytes), err)
		return domain.TechnicalErrorResult()
	}
	return *out
}

func (g *Gateway) verify(ctx context.Context, req domain.VerificationRequest) (out *domain.VerificationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, &panicError{value: r}
		}
	}()

	out, err = g.strategy.Verify(ctx, req)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrEmptyResponse
	}
	if err := validate.Struct(out); err != nil {
		return nil, err
	}
	return out, nil
}

type panicError struct {
	value interface{}
}

func (e *panicError) Error() string {
	return fmt.Sprintf("verifier panicked: %v", e.value)
}
