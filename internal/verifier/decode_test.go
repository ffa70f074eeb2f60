package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarlink/internal/verifier"
)

func TestDecodeResult_PlainJSON(t *testing.T) {
	out, err := verifier.DecodeResult(`{"isValid":true,"percentage":91.2,"studentName":"Harika R.","reason":"clean"}`)

	require.NoError(t, err)
	assert.True(t, out.IsValid)
	assert.Equal(t, 91.2, out.Percentage)
	assert.Equal(t, "Harika R.", out.StudentName)
	assert.Equal(t, "clean", out.Reason)
}

func TestDecodeResult_CodeFenced(t *testing.T) {
	out, err := verifier.DecodeResult("```json\n{\"isValid\":false,\"percentage\":0,\"reason\":\"blurred\"}\n```")

	require.NoError(t, err)
	assert.False(t, out.IsValid)
	assert.Equal(t, "blurred", out.Reason)
	assert.Empty(t, out.StudentName)
}

func TestDecodeResult_Empty(t *testing.T) {
	_, err := verifier.DecodeResult("   ")

	assert.ErrorIs(t, err, verifier.ErrEmptyResponse)
}

func TestDecodeResult_Malformed(t *testing.T) {
	_, err := verifier.DecodeResult(`{"isValid": tru`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing verification JSON")
}

func TestDecodeResult_PercentageOutOfRange(t *testing.T) {
	_, err := verifier.DecodeResult(`{"isValid":true,"percentage":120,"reason":"x"}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of schema")
}

func TestDecodeResult_MissingReason(t *testing.T) {
	for _, text := range []string{`{}`, `null`, `{"isValid":true,"percentage":80}`, `{"isValid":false,"percentage":0,"reason":""}`} {
		_, err := verifier.DecodeResult(text)

		require.Error(t, err, text)
		assert.Contains(t, err.Error(), "out of schema", text)
	}
}

func TestRateLimitError_Message(t *testing.T) {
	err := &verifier.RateLimitError{Provider: "gemini", Body: "quota exhausted"}

	assert.Equal(t, "gemini rate limited (status 429): quota exhausted", err.Error())
}
