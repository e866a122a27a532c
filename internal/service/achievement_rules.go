package service

import (
	"anchorpoint_backend/internal/model"
	"time"
)

// AchievementRule is one badge predicate over a user's progress history.
// All rules are monotonic: once satisfied they stay satisfied as history grows.
type AchievementRule struct {
	Title       string
	Description string
	Category    string
	IconURL     string
	Satisfied   func(history []model.ProgressEntry) bool
}

// achievementRules is the fixed rule table, evaluated uniformly.
// "7-Day Streak" counts total entries, not calendar-consecutive days; the
// behavior is kept as shipped pending product clarification.
var achievementRules = []AchievementRule{
	{
		Title:       "First Step",
		Description: "Completed your first activity!",
		Category:    "milestone",
		IconURL:     "https://example.com/first-step.png",
		Satisfied: func(history []model.ProgressEntry) bool {
			return len(history) == 1
		},
	},
	{
		Title:       "7-Day Streak",
		Description: "Completed activities for 7 consecutive days!",
		Category:    "consistency",
		IconURL:     "https://example.com/streak.png",
		Satisfied: func(history []model.ProgressEntry) bool {
			return len(history) >= 7
		},
	},
	{
		Title:       "Mood Booster",
		Description: "Improved your mood 5 times through activities!",
		Category:    "wellness",
		IconURL:     "https://example.com/mood-boost.png",
		Satisfied: func(history []model.ProgressEntry) bool {
			improved := 0
			for _, e := range history {
				if e.MoodAfter > e.MoodBefore {
					improved++
				}
			}
			return improved >= 5
		},
	},
}

// EvaluateAchievements returns the achievements the user has newly earned:
// every rule whose predicate holds for the history and whose title is not in
// held. Pure function; the caller persists the result. EarnedAt is stamped
// with the evaluation time.
func EvaluateAchievements(userID uint, history []model.ProgressEntry, held map[string]bool) []model.Achievement {
	var earned []model.Achievement
	now := time.Now()

	for _, rule := range achievementRules {
		if held[rule.Title] {
			continue
		}
		if !rule.Satisfied(history) {
			continue
		}
		earned = append(earned, model.Achievement{
			UserID:      userID,
			Title:       rule.Title,
			Description: rule.Description,
			Category:    rule.Category,
			IconURL:     rule.IconURL,
			EarnedAt:    now,
		})
	}

	return earned
}
