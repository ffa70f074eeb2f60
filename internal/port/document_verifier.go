package port

import (
	"context"

	"scholarlink/internal/domain"
)

// DocumentVerifier is one verification strategy. Implementations may fail;
// callers that need a verdict no matter what go through VerificationGateway.
type DocumentVerifier interface {
	Verify(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error)
	Name() string
}

// VerificationGateway always resolves to a verdict. Failures are folded into
// a negative result instead of being returned.
type VerificationGateway interface {
	Verify(ctx context.Context, req domain.VerificationRequest) domain.VerificationResult
}
