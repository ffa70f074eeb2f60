package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"scholarlink/internal/config"
	"scholarlink/internal/domain"
	"scholarlink/internal/port"
	"scholarlink/internal/verifier"
)

const (
	// ProviderName is the config value that selects this verifier.
	ProviderName = "gemini"

	apiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel = "gemini-2.5-flash"
)

// Verifier implements port.DocumentVerifier using Google's Gemini API.
type Verifier struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewVerifier creates a Gemini-based document verifier.
// cfg.Endpoint overrides the generateContent URL (used by tests and proxies).
func NewVerifier(cfg *config.VerifierConfig) *Verifier {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Verifier{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Register adds the Gemini provider to the verifier registry.
func Register() {
	verifier.RegisterProvider(ProviderName, func(cfg *config.VerifierConfig) (port.DocumentVerifier, error) {
		return NewVerifier(cfg), nil
	})
}

func (v *Verifier) Name() string { return ProviderName }

// Model returns the model identifier sent with each request.
func (v *Verifier) Model() string { return v.model }

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   verifier.Schema `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func (v *Verifier) Verify(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
	reqBody := generateRequest{
		Contents: []content{
			{
				Role: "user",
				Parts: []part{
					{InlineData: &inlineData{
						MimeType: req.ContentType,
						Data:     base64.StdEncoding.EncodeToString(req.FileBytes),
					}},
					{Text: verifier.Instruction},
				},
			},
		},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   verifier.ResultSchema(),
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", v.apiKey)

	resp, err := v.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &verifier.RateLimitError{Provider: ProviderName, Body: string(respBody)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody)
}

func parseResponse(body []byte) (*domain.VerificationResult, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", verifier.ErrEmptyResponse)
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return verifier.DecodeResult(sb.String())
}
