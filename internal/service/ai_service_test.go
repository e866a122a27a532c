package service

import (
	"anchorpoint_backend/internal/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAIServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *AIService) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewAIService(config.AIConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
	return server, svc
}

func TestAIServiceChat(t *testing.T) {
	var gotReq ChatCompletionRequest
	var gotAuth string

	_, svc := newAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []struct {
				Message AIChatMessage `json:"message"`
			}{
				{Message: AIChatMessage{Role: "assistant", Content: "Take a slow breath."}},
			},
		})
	})

	reply, err := svc.Chat("I feel anxious", `{"personalityType":"calm-seeker"}`)
	require.NoError(t, err)
	assert.Equal(t, "Take a slow breath.", reply)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "User Context")
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "I feel anxious", gotReq.Messages[1].Content)
}

func TestAIServiceChatOmitsEmptyUserContext(t *testing.T) {
	var gotReq ChatCompletionRequest

	_, svc := newAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []struct {
				Message AIChatMessage `json:"message"`
			}{
				{Message: AIChatMessage{Role: "assistant", Content: "ok"}},
			},
		})
	})

	_, err := svc.Chat("hello", "")
	require.NoError(t, err)
	assert.NotContains(t, gotReq.Messages[0].Content, "User Context")
}

func TestAIServiceChatUpstreamError(t *testing.T) {
	_, svc := newAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	_, err := svc.Chat("hello", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestAIServiceChatNoChoices(t *testing.T) {
	_, svc := newAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatCompletionResponse{})
	})

	_, err := svc.Chat("hello", "")
	require.Error(t, err)
}

func TestAIServiceChatUnreachable(t *testing.T) {
	server, svc := newAIServer(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := svc.Chat("hello", "")
	assert.Error(t, err)
}
