package service

import (
	"anchorpoint_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeHistory(n int, improved int) []model.ProgressEntry {
	entries := make([]model.ProgressEntry, 0, n)
	for i := 0; i < n; i++ {
		e := model.ProgressEntry{UserID: 1, MoodBefore: 5, MoodAfter: 5}
		if i < improved {
			e.MoodAfter = 7
		}
		entries = append(entries, e)
	}
	return entries
}

func titles(earned []model.Achievement) []string {
	out := make([]string, 0, len(earned))
	for _, a := range earned {
		out = append(out, a.Title)
	}
	return out
}

func TestEvaluateAchievementsFirstStep(t *testing.T) {
	earned := EvaluateAchievements(1, makeHistory(1, 0), nil)

	require.Len(t, earned, 1)
	assert.Equal(t, "First Step", earned[0].Title)
	assert.Equal(t, "milestone", earned[0].Category)
	assert.Equal(t, uint(1), earned[0].UserID)
	assert.False(t, earned[0].EarnedAt.IsZero())
}

func TestEvaluateAchievementsFirstStepOnlyAtOneEntry(t *testing.T) {
	// The predicate is exact: at two entries "First Step" is no longer
	// satisfiable, so a user who missed it (e.g. held map lost) never
	// earns it retroactively.
	earned := EvaluateAchievements(1, makeHistory(2, 0), nil)
	assert.NotContains(t, titles(earned), "First Step")
}

func TestEvaluateAchievementsStreakAtSevenEntries(t *testing.T) {
	held := map[string]bool{"First Step": true}

	earned := EvaluateAchievements(1, makeHistory(6, 0), held)
	assert.Empty(t, earned)

	earned = EvaluateAchievements(1, makeHistory(7, 0), held)
	require.Len(t, earned, 1)
	assert.Equal(t, "7-Day Streak", earned[0].Title)

	// Still satisfied past seven; suppressed only by held.
	earned = EvaluateAchievements(1, makeHistory(12, 0), held)
	assert.Contains(t, titles(earned), "7-Day Streak")
}

func TestEvaluateAchievementsMoodBoosterCountsImprovedEntries(t *testing.T) {
	held := map[string]bool{"First Step": true, "7-Day Streak": true}

	earned := EvaluateAchievements(1, makeHistory(10, 4), held)
	assert.Empty(t, earned, "four improved entries must not award Mood Booster")

	earned = EvaluateAchievements(1, makeHistory(10, 5), held)
	require.Len(t, earned, 1)
	assert.Equal(t, "Mood Booster", earned[0].Title)
	assert.Equal(t, "wellness", earned[0].Category)
}

func TestEvaluateAchievementsEqualMoodIsNotImprovement(t *testing.T) {
	history := make([]model.ProgressEntry, 5)
	for i := range history {
		history[i] = model.ProgressEntry{UserID: 1, MoodBefore: 6, MoodAfter: 6}
	}
	held := map[string]bool{"First Step": true}

	earned := EvaluateAchievements(1, history, held)
	assert.NotContains(t, titles(earned), "Mood Booster")
}

func TestEvaluateAchievementsMultipleAwardsInOnePass(t *testing.T) {
	// Seven entries, five of them mood-improving, nothing held: the streak
	// and the booster land together.
	earned := EvaluateAchievements(1, makeHistory(7, 5), nil)
	got := titles(earned)

	assert.NotContains(t, got, "First Step")
	assert.Contains(t, got, "7-Day Streak")
	assert.Contains(t, got, "Mood Booster")
	assert.Len(t, earned, 2)
}

func TestEvaluateAchievementsHeldTitlesAreNeverReturned(t *testing.T) {
	held := map[string]bool{
		"First Step":   true,
		"7-Day Streak": true,
		"Mood Booster": true,
	}

	earned := EvaluateAchievements(1, makeHistory(20, 20), held)
	assert.Empty(t, earned)
}

func TestEvaluateAchievementsIsIdempotent(t *testing.T) {
	history := makeHistory(7, 5)

	first := EvaluateAchievements(1, history, nil)
	require.NotEmpty(t, first)

	held := map[string]bool{}
	for _, a := range first {
		held[a.Title] = true
	}

	second := EvaluateAchievements(1, history, held)
	assert.Empty(t, second, "re-evaluating the same history must award nothing new")
}

func TestEvaluateAchievementsPerEntryAccumulation(t *testing.T) {
	// Evaluating after every submission (the production path) collects all
	// three awards; a single evaluation over the final history misses
	// "First Step" because its predicate is exact. Both paths agree on
	// everything except the length-sensitive rule.
	history := makeHistory(7, 5)
	held := map[string]bool{}

	for i := 1; i <= len(history); i++ {
		for _, a := range EvaluateAchievements(1, history[:i], held) {
			held[a.Title] = true
		}
	}

	assert.True(t, held["First Step"])
	assert.True(t, held["7-Day Streak"])
	assert.True(t, held["Mood Booster"])

	batch := titles(EvaluateAchievements(1, history, nil))
	assert.ElementsMatch(t, []string{"7-Day Streak", "Mood Booster"}, batch)
}

func TestEvaluateAchievementsEmptyHistory(t *testing.T) {
	earned := EvaluateAchievements(1, nil, nil)
	assert.Empty(t, earned)
}
