package service

import (
	"anchorpoint_backend/internal/config"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AIService talks to an OpenAI-compatible chat-completions endpoint.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const coachSystemPrompt = `You are a compassionate mental health coach AI assistant. Your role is to provide supportive, empathetic, and helpful responses to users seeking mental health guidance.

Guidelines:
- Be empathetic and non-judgmental
- Provide practical, evidence-based suggestions
- Encourage professional help when appropriate
- Use a warm, supportive tone
- Keep responses concise but helpful
- Never provide medical diagnoses
- Always remind users that you're an AI assistant, not a replacement for professional therapy`

// Chat sends one synchronous completion request. userContext, when non-empty,
// is appended to the system prompt so the model can personalize its answer.
func (s *AIService) Chat(prompt string, userContext string) (string, error) {
	systemContent := coachSystemPrompt
	if userContext != "" {
		systemContent = fmt.Sprintf("%s\n\nUser Context: %s", coachSystemPrompt, userContext)
	}

	messages := []AIChatMessage{
		{Role: "system", Content: systemContent},
		{Role: "user", Content: prompt},
	}

	reqBody := ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}
