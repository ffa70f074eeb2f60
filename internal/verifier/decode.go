package verifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"scholarlink/internal/domain"
)

var validate = validator.New()

// DecodeResult parses the provider's structured text into a VerificationResult.
// Blank text is ErrEmptyResponse. A missing reason or a percentage outside
// [0,100] is rejected.
func DecodeResult(text string) (*domain.VerificationResult, error) {
	text = stripCodeFences(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var out domain.VerificationResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("parsing verification JSON: %w (raw: %s)", err, truncate(text, 200))
	}
	if err := validate.Struct(out); err != nil {
		return nil, fmt.Errorf("verification result out of schema: %w", err)
	}
	return &out, nil
}

// stripCodeFences removes surrounding Markdown code fences like ```json ... ```.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i != -1 {
		// language tag such as "json"
		if tag := strings.TrimSpace(s[:i]); len(tag) < 20 && !strings.ContainsAny(tag, "{[") {
			s = s[i+1:]
		}
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
