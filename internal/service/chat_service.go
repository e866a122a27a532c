package service

import (
	"anchorpoint_backend/internal/model"
	"anchorpoint_backend/internal/repository"
	"anchorpoint_backend/pkg/logger"
	"anchorpoint_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FallbackMessage is returned whenever the completion call fails; coaching
// chat degrades silently instead of surfacing an error to the user.
const FallbackMessage = "I'm sorry, I'm having trouble processing your request right now. Please try again later, and remember that I'm here to support you."

// AIClient is the completion dependency of the chat service.
type AIClient interface {
	Chat(prompt string, userContext string) (string, error)
}

type ChatService struct {
	ChatRepo     *repository.ChatRepository
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	GoalRepo     *repository.GoalRepository
	AI           AIClient
}

func NewChatService(
	chatRepo *repository.ChatRepository,
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	goalRepo *repository.GoalRepository,
	ai AIClient,
) *ChatService {
	return &ChatService{
		ChatRepo:     chatRepo,
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		GoalRepo:     goalRepo,
		AI:           ai,
	}
}

type ChatReply struct {
	Message   string `json:"message"`
	SessionID uint   `json:"sessionId"`
}

// SendMessage appends the user message to the latest session (creating one
// when none exists), asks the coach model for a reply with the user's recent
// progress and goals as context, and persists both sides of the exchange.
func (s *ChatService) SendMessage(userID uint, message string) (*ChatReply, error) {
	session, err := s.ChatRepo.FindLatestSessionByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		session = &model.ChatSession{UserID: userID}
		if err := s.ChatRepo.CreateSession(session); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	if err := s.ChatRepo.AppendMessage(&model.ChatMessage{
		SessionID: session.ID,
		Role:      model.ChatRoleUser,
		Content:   message,
		SentAt:    now,
	}); err != nil {
		return nil, err
	}

	reply := coachReply(s.AI, message, s.buildUserContext(userID), userID)

	if err := s.ChatRepo.AppendMessage(&model.ChatMessage{
		SessionID: session.ID,
		Role:      model.ChatRoleAssistant,
		Content:   reply,
		SentAt:    time.Now(),
	}); err != nil {
		return nil, err
	}

	return &ChatReply{Message: reply, SessionID: session.ID}, nil
}

// coachReply asks the coach model for a completion; any failure degrades to
// the canned fallback so the chat endpoint never errors on the AI's behalf.
func coachReply(ai AIClient, message, userContext string, userID uint) string {
	reply, err := ai.Chat(message, userContext)
	if err != nil {
		logger.Log.Error("AI completion failed, serving fallback", zap.Error(err), zap.Uint("user_id", userID))
		monitoring.AIChatRequests.WithLabelValues("fallback").Inc()
		return FallbackMessage
	}
	monitoring.AIChatRequests.WithLabelValues("ok").Inc()
	return reply
}

// GetHistory returns the messages of the latest session, oldest first.
// A user with no session gets an empty slice, not an error.
func (s *ChatService) GetHistory(userID uint) ([]model.ChatMessage, error) {
	session, err := s.ChatRepo.FindLatestSessionByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.ChatMessage{}, nil
		}
		return nil, err
	}
	return session.Messages, nil
}

type chatUserContext struct {
	Name            string                `json:"name"`
	PersonalityType model.PersonalityType `json:"personalityType"`
	RecentProgress  []progressSummary     `json:"recentProgress,omitempty"`
	CurrentGoals    []goalSummary         `json:"currentGoals,omitempty"`
}

type progressSummary struct {
	MoodBefore  int       `json:"moodBefore"`
	MoodAfter   int       `json:"moodAfter"`
	CompletedAt time.Time `json:"completedAt"`
}

type goalSummary struct {
	Title        string `json:"title"`
	CurrentValue int    `json:"currentValue"`
	TargetValue  int    `json:"targetValue"`
	Unit         string `json:"unit"`
}

// buildUserContext serializes the caller's profile, 5 most recent entries
// and 3 most recent goals. Lookup failures degrade to a smaller context.
func (s *ChatService) buildUserContext(userID uint) string {
	ctx := chatUserContext{}

	if user, err := s.UserRepo.FindByID(userID); err == nil {
		ctx.Name = user.Name
		ctx.PersonalityType = user.PersonalityType
	}

	if entries, err := s.ProgressRepo.FindRecentByUserID(userID, 5); err == nil {
		for _, e := range entries {
			ctx.RecentProgress = append(ctx.RecentProgress, progressSummary{
				MoodBefore:  e.MoodBefore,
				MoodAfter:   e.MoodAfter,
				CompletedAt: e.CompletedAt,
			})
		}
	}

	if goals, err := s.GoalRepo.FindRecentByUserID(userID, 3); err == nil {
		for _, g := range goals {
			ctx.CurrentGoals = append(ctx.CurrentGoals, goalSummary{
				Title:        g.Title,
				CurrentValue: g.CurrentValue,
				TargetValue:  g.TargetValue,
				Unit:         g.Unit,
			})
		}
	}

	data, err := json.Marshal(ctx)
	if err != nil {
		return ""
	}
	return string(data)
}
