package domain

// VerificationRequest is an uploaded document awaiting verification.
// It only lives for the duration of one call.
type VerificationRequest struct {
	FileBytes   []byte
	ContentType string
	FileName    string
}

// VerificationResult is the verdict on a marks memo.
type VerificationResult struct {
	IsValid     bool    `json:"isValid"`
	Percentage  float64 `json:"percentage" validate:"gte=0,lte=100"`
	StudentName string  `json:"studentName,omitempty"`
	Reason      string  `json:"reason" validate:"required"`
}

// TechnicalErrorReason is reported whenever verification could not complete.
const TechnicalErrorReason = "Could not verify document due to technical error."

// TechnicalErrorResult is returned in place of any verification failure.
func TechnicalErrorResult() VerificationResult {
	return VerificationResult{
		IsValid:    false,
		Percentage: 0,
		Reason:     TechnicalErrorReason,
	}
}
