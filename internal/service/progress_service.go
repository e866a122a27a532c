package service

import (
	"anchorpoint_backend/internal/model"
	"anchorpoint_backend/internal/repository"
	"anchorpoint_backend/internal/util"
	"anchorpoint_backend/pkg/logger"
	"anchorpoint_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

type ProgressService struct {
	ProgressRepo    *repository.ProgressRepository
	AchievementRepo *repository.AchievementRepository
	ActivityRepo    *repository.ActivityRepository
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	achievementRepo *repository.AchievementRepository,
	activityRepo *repository.ActivityRepository,
) *ProgressService {
	return &ProgressService{
		ProgressRepo:    progressRepo,
		AchievementRepo: achievementRepo,
		ActivityRepo:    activityRepo,
	}
}

type ProgressRequest struct {
	ActivityID *uint  `json:"activityId"`
	MoodBefore int    `json:"moodBefore" binding:"required,min=1,max=10"`
	MoodAfter  int    `json:"moodAfter" binding:"required,min=1,max=10"`
	Notes      string `json:"notes"`
	Duration   int    `json:"duration"`
}

// RecordProgress persists the entry, then re-evaluates the achievement rules
// over the user's full history and stores anything newly earned. A duplicate
// award from a concurrent submission is absorbed by the unique index.
func (s *ProgressService) RecordProgress(userID uint, req ProgressRequest) (*model.ProgressEntry, []model.Achievement, error) {
	if req.ActivityID != nil {
		if _, err := s.ActivityRepo.FindByID(*req.ActivityID); err != nil {
			return nil, nil, util.ErrActivityNotFound
		}
	}

	entry := &model.ProgressEntry{
		UserID:      userID,
		ActivityID:  req.ActivityID,
		MoodBefore:  req.MoodBefore,
		MoodAfter:   req.MoodAfter,
		Notes:       req.Notes,
		Duration:    req.Duration,
		CompletedAt: time.Now(),
	}

	if err := s.ProgressRepo.Create(entry); err != nil {
		return nil, nil, err
	}

	earned, err := s.evaluateAndAward(userID)
	if err != nil {
		// The entry is saved; a failed award pass is logged, not surfaced.
		// The rules are monotonic, so the next submission re-awards it.
		logger.Log.Error("achievement evaluation failed", zap.Error(err), zap.Uint("user_id", userID))
		return entry, nil, nil
	}

	return entry, earned, nil
}

func (s *ProgressService) GetUserProgress(userID uint) ([]model.ProgressEntry, error) {
	return s.ProgressRepo.FindByUserID(userID)
}

func (s *ProgressService) evaluateAndAward(userID uint) ([]model.Achievement, error) {
	history, err := s.ProgressRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	held, err := s.AchievementRepo.FindTitlesByUserID(userID)
	if err != nil {
		return nil, err
	}

	earned := EvaluateAchievements(userID, history, held)
	for i := range earned {
		if err := s.AchievementRepo.CreateIgnoreDuplicate(&earned[i]); err != nil {
			return nil, err
		}
		monitoring.AchievementsAwarded.WithLabelValues(earned[i].Title).Inc()
	}

	return earned, nil
}
