package service

import (
	"anchorpoint_backend/internal/model"
	"anchorpoint_backend/internal/repository"
)

// UserService covers profile preferences and quiz submission.
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) UpdatePreferences(userID uint, prefs model.Preferences) error {
	return s.UserRepo.UpdatePreferences(userID, prefs)
}

func (s *UserService) UpdateAvatar(userID uint, url string) error {
	return s.UserRepo.UpdateAvatar(userID, url)
}

// SubmitQuiz classifies the answers and overwrites the stored personality
// type; each submission replaces the previous result.
func (s *UserService) SubmitQuiz(userID uint, answers []int) (model.PersonalityType, error) {
	personality := ClassifyPersonality(answers)
	if err := s.UserRepo.UpdatePersonalityType(userID, personality); err != nil {
		return "", err
	}
	return personality, nil
}
