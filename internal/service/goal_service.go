package service

import (
	"anchorpoint_backend/internal/model"
	"anchorpoint_backend/internal/repository"
	"anchorpoint_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type GoalService struct {
	GoalRepo *repository.GoalRepository
}

func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{GoalRepo: goalRepo}
}

type GoalRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category" binding:"required"`
	TargetValue int        `json:"targetValue" binding:"required,min=1"`
	Unit        string     `json:"unit" binding:"required"`
	Deadline    *time.Time `json:"deadline"`
}

type GoalProgressRequest struct {
	CurrentValue int `json:"currentValue" binding:"min=0"`
}

func (s *GoalService) GetUserGoals(userID uint) ([]model.Goal, error) {
	return s.GoalRepo.FindByUserID(userID)
}

func (s *GoalService) CreateGoal(userID uint, req GoalRequest) (*model.Goal, error) {
	goal := &model.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Deadline:    req.Deadline,
	}
	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateProgress sets the goal's current value; reaching the target marks it
// completed, and dropping back below reopens it.
func (s *GoalService) UpdateProgress(userID, goalID uint, req GoalProgressRequest) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGoalNotFound
		}
		return nil, err
	}

	goal.CurrentValue = req.CurrentValue
	goal.IsCompleted = goal.CurrentValue >= goal.TargetValue

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}
