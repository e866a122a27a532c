package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubAI struct {
	reply string
	err   error

	gotPrompt  string
	gotContext string
}

func (s *stubAI) Chat(prompt string, userContext string) (string, error) {
	s.gotPrompt = prompt
	s.gotContext = userContext
	return s.reply, s.err
}

func TestCoachReplyPassesThroughAIAnswer(t *testing.T) {
	ai := &stubAI{reply: "You are doing great."}

	got := coachReply(ai, "how am I doing?", `{"name":"Ana"}`, 1)

	assert.Equal(t, "You are doing great.", got)
	assert.Equal(t, "how am I doing?", ai.gotPrompt)
	assert.Equal(t, `{"name":"Ana"}`, ai.gotContext)
}

func TestCoachReplyFallsBackOnError(t *testing.T) {
	ai := &stubAI{err: errors.New("connection refused")}

	got := coachReply(ai, "hello", "", 1)

	assert.Equal(t, FallbackMessage, got)
}

func TestCoachReplyFallsBackOnUpstreamError(t *testing.T) {
	// Same degradation regardless of the failure kind; the user never sees
	// the upstream error text.
	ai := &stubAI{err: errors.New("AI API error (status 500): boom")}

	got := coachReply(ai, "hello", "", 1)

	assert.Equal(t, FallbackMessage, got)
	assert.NotContains(t, got, "500")
}
