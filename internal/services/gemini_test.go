package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/genai"

	"alfredoptarigan/career-copilot/internal/config"
)

const textResponse = `{"candidates":[{"content":{"role":"model","parts":[{"text":"hello from gemini"}]}}]}`

func newStubGemini(t *testing.T, timeout time.Duration, handler http.HandlerFunc) GeminiService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewGeminiService(context.Background(), config.GeminiConfig{
		APIKey:      "test-key",
		Model:       "gemini-test",
		Temperature: 0.5,
		Timeout:     timeout,
		BaseURL:     server.URL,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return svc
}

func TestNewGeminiService_MissingKey(t *testing.T) {
	svc, err := NewGeminiService(context.Background(), config.GeminiConfig{
		Model:   "gemini-2.5-flash",
		Timeout: time.Second,
	}, zaptest.NewLogger(t))

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestGeminiGenerate_ForwardsRequest(t *testing.T) {
	var body string

	svc := newStubGemini(t, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		raw, _ := io.ReadAll(r.Body)
		body = string(raw)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(textResponse))
	})

	text, err := svc.Generate(context.Background(), GenerationRequest{
		Prompt:            "write a cover letter",
		SystemInstruction: "act as a recruiter",
	})

	require.NoError(t, err)
	assert.Equal(t, "hello from gemini", text)
	assert.Equal(t, "gemini-test", svc.Model())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	assert.Contains(t, body, "write a cover letter")
	assert.Contains(t, decoded, "systemInstruction")
	assert.Contains(t, body, "act as a recruiter")
	assert.NotContains(t, body, "responseMimeType")
}

func TestGeminiGenerate_ResponseMIMEType(t *testing.T) {
	tests := []struct {
		name     string
		req      GenerationRequest
		wantMIME string
	}{
		{
			name:     "schema implies json",
			req:      GenerationRequest{Prompt: "jobs", ResponseSchema: JobListSchema()},
			wantMIME: `"responseMimeType":"application/json"`,
		},
		{
			name:     "explicit type wins",
			req:      GenerationRequest{Prompt: "jobs", ResponseSchema: JobListSchema(), ResponseMIMEType: "text/x.enum"},
			wantMIME: `"responseMimeType":"text/x.enum"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body string
			svc := newStubGemini(t, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
				raw, _ := io.ReadAll(r.Body)
				body = string(raw)
				w.Write([]byte(textResponse))
			})

			_, err := svc.Generate(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Contains(t, body, tt.wantMIME)
			assert.Contains(t, body, "responseSchema")
		})
	}
}

func TestGeminiGenerate_EmptyCandidates(t *testing.T) {
	svc := newStubGemini(t, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	text, err := svc.Generate(context.Background(), GenerationRequest{Prompt: "anything"})

	assert.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestGeminiGenerate_APIErrorWrapsProviderCall(t *testing.T) {
	svc := newStubGemini(t, 5*time.Second, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	})

	_, err := svc.Generate(context.Background(), GenerationRequest{Prompt: "anything"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderCall)
	assert.Equal(t, CodeProviderCall, ErrorCode(err))

	var apiErr genai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func TestGeminiGenerate_AppliesTimeout(t *testing.T) {
	svc := newStubGemini(t, 50*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	started := time.Now()
	_, err := svc.Generate(context.Background(), GenerationRequest{Prompt: "slow"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderCall)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(started), 4*time.Second)
}
