package gemini_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarlink/internal/config"
	"scholarlink/internal/domain"
	"scholarlink/internal/verifier"
	"scholarlink/internal/verifier/gemini"
)

func newTestVerifier(serverURL string) *gemini.Verifier {
	return gemini.NewVerifier(&config.VerifierConfig{
		Provider:    gemini.ProviderName,
		APIKey:      "test-gemini-key",
		Model:       "gemini-2.5-flash",
		Endpoint:    serverURL,
		TimeoutSecs: 5,
	})
}

func geminiSuccessResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func jpegRequest() domain.VerificationRequest {
	return domain.VerificationRequest{
		FileBytes:   []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46},
		ContentType: "image/jpeg",
		FileName:    "memo.jpg",
	}
}

func TestGeminiVerifier_Verify_RequestShapeAndRoundTrip(t *testing.T) {
	input := jpegRequest()
	llmJSON := `{"isValid":true,"percentage":78.4,"studentName":"Rahul K.","reason":"Seal and signatures consistent."}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		contents := reqBody["contents"].([]interface{})
		assert.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		assert.Len(t, parts, 2)

		inline := parts[0].(map[string]interface{})["inline_data"].(map[string]interface{})
		assert.Equal(t, "image/jpeg", inline["mime_type"])
		decoded, err := base64.StdEncoding.DecodeString(inline["data"].(string))
		assert.NoError(t, err)
		assert.Equal(t, input.FileBytes, decoded)

		assert.Equal(t, verifier.Instruction, parts[1].(map[string]interface{})["text"])

		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", genConfig["responseMimeType"])
		schema := genConfig["responseSchema"].(map[string]interface{})
		assert.Equal(t, "OBJECT", schema["type"])
		props := schema["properties"].(map[string]interface{})
		assert.Equal(t, "BOOLEAN", props["isValid"].(map[string]interface{})["type"])
		assert.Equal(t, "NUMBER", props["percentage"].(map[string]interface{})["type"])
		assert.Equal(t, "STRING", props["studentName"].(map[string]interface{})["type"])
		assert.Equal(t, "STRING", props["reason"].(map[string]interface{})["type"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(geminiSuccessResponse(llmJSON))
	}))
	defer server.Close()

	v := newTestVerifier(server.URL)
	out, err := v.Verify(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, &domain.VerificationResult{
		IsValid:     true,
		Percentage:  78.4,
		StudentName: "Rahul K.",
		Reason:      "Seal and signatures consistent.",
	}, out)
	assert.Equal(t, "gemini", v.Name())
	assert.Equal(t, "gemini-2.5-flash", v.Model())
}

func TestGeminiVerifier_Verify_MultiPartText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]interface{}{
					{"text": `{"isValid":false,"percentage":0,`},
					{"text": `"reason":"photocopy"}`},
				}}},
			},
		})
	}))
	defer server.Close()

	out, err := newTestVerifier(server.URL).Verify(context.Background(), jpegRequest())

	require.NoError(t, err)
	assert.False(t, out.IsValid)
	assert.Equal(t, "photocopy", out.Reason)
}

func TestGeminiVerifier_Verify_EmptyObjectIsHardFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	out, err := newTestVerifier(server.URL).Verify(context.Background(), jpegRequest())

	assert.Nil(t, out)
	assert.ErrorIs(t, err, verifier.ErrEmptyResponse)
}

func TestGeminiVerifier_Verify_EmptyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiSuccessResponse(""))
	}))
	defer server.Close()

	_, err := newTestVerifier(server.URL).Verify(context.Background(), jpegRequest())

	assert.ErrorIs(t, err, verifier.ErrEmptyResponse)
}

func TestGeminiVerifier_Verify_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiSuccessResponse("this is not json"))
	}))
	defer server.Close()

	_, err := newTestVerifier(server.URL).Verify(context.Background(), jpegRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing verification JSON")
}

func TestGeminiVerifier_Verify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"internal"}}`))
	}))
	defer server.Close()

	_, err := newTestVerifier(server.URL).Verify(context.Background(), jpegRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGeminiVerifier_Verify_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer server.Close()

	_, err := newTestVerifier(server.URL).Verify(context.Background(), jpegRequest())

	var rlErr *verifier.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "gemini", rlErr.Provider)
	assert.Contains(t, rlErr.Body, "quota")
}

func TestGeminiVerifier_Verify_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestVerifier(url).Verify(context.Background(), jpegRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "calling gemini API")
}

func TestGateway_WithCredential_EmptyUpstream_ReturnsTechnicalError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	gemini.Register()
	strategy, err := verifier.NewFromConfig(&config.VerifierConfig{
		Provider: gemini.ProviderName,
		APIKey:   "test-gemini-key",
		Endpoint: server.URL,
	})
	require.NoError(t, err)
	require.Equal(t, gemini.ProviderName, strategy.Name())

	result := verifier.NewGateway(strategy).Verify(context.Background(), jpegRequest())

	assert.Equal(t, domain.VerificationResult{
		IsValid:    false,
		Percentage: 0,
		Reason:     "Could not verify document due to technical error.",
	}, result)
}
