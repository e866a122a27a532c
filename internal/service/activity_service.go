package service

import (
	"anchorpoint_backend/internal/model"
	"anchorpoint_backend/internal/repository"
)

const recommendationLimit = 6

// personalityCategories maps a personality type to the activity categories
// favored for it. Types without an entry get the unfiltered catalog.
var personalityCategories = map[model.PersonalityType][]string{
	model.PersonalityCalmSeeker:      {"breathing", "mindfulness"},
	model.PersonalityActiveEnergizer: {"movement", "breathing"},
}

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	UserRepo     *repository.UserRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository, userRepo *repository.UserRepository) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		UserRepo:     userRepo,
	}
}

func (s *ActivityService) GetActivities(category, search string) ([]model.Activity, error) {
	return s.ActivityRepo.FindActive(category, search)
}

// GetRecommended filters the active catalog by the user's personality type
// and caps the result at six activities.
func (s *ActivityService) GetRecommended(userID uint) ([]model.Activity, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	activities, err := s.ActivityRepo.FindActive("", "")
	if err != nil {
		return nil, err
	}

	return RecommendForPersonality(user.PersonalityType, activities), nil
}

// RecommendForPersonality applies the personality category filter and the
// result cap. Pure function over its inputs.
func RecommendForPersonality(personality model.PersonalityType, activities []model.Activity) []model.Activity {
	categories, ok := personalityCategories[personality]

	recommended := make([]model.Activity, 0, recommendationLimit)
	for _, a := range activities {
		if ok && !containsCategory(categories, a.Category) {
			continue
		}
		recommended = append(recommended, a)
		if len(recommended) == recommendationLimit {
			break
		}
	}
	return recommended
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
