package service

import (
	"context"
	"log"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

// VerificationService checks a standalone marks memo without attaching it to a student.
type VerificationService interface {
	Verify(ctx context.Context, input DocumentUpload) (*domain.VerificationResult, error)
	Provider() string
}

type verificationService struct {
	gateway  port.VerificationGateway
	provider string
	limits   UploadLimits
}

// NewVerificationService creates a new VerificationService implementation.
// provider is reported for diagnostics only.
func NewVerificationService(gateway port.VerificationGateway, provider string, limits UploadLimits) VerificationService {
	return &verificationService{gateway: gateway, provider: provider, limits: limits}
}

// Verify rejects unusable uploads with a domain error. Once the file is
// accepted a result is always returned.
func (s *verificationService) Verify(ctx context.Context, input DocumentUpload) (*domain.VerificationResult, error) {
	doc, err := readDocument(input, s.limits)
	if err != nil {
		return nil, err
	}

	log.Printf("verificationService.Verify: verifying %s (%s, %d bytes) with %s",
		doc.fileName, doc.contentType, len(doc.data), s.provider)

	result := s.gateway.Verify(ctx, doc.request())
	return &result, nil
}

func (s *verificationService) Provider() string {
	return s.provider
}
