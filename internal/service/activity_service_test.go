package service

import (
	"anchorpoint_backend/internal/model"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []model.Activity {
	return []model.Activity{
		{Title: "Box Breathing", Category: "breathing"},
		{Title: "Body Scan", Category: "mindfulness"},
		{Title: "Gratitude Journal", Category: "journaling"},
		{Title: "Desk Stretches", Category: "movement"},
		{Title: "Evening Walk", Category: "movement"},
		{Title: "Loving Kindness", Category: "mindfulness"},
	}
}

func TestRecommendForPersonalityCalmSeeker(t *testing.T) {
	got := RecommendForPersonality(model.PersonalityCalmSeeker, catalog())

	require.Len(t, got, 3)
	for _, a := range got {
		assert.Contains(t, []string{"breathing", "mindfulness"}, a.Category)
	}
}

func TestRecommendForPersonalityActiveEnergizer(t *testing.T) {
	got := RecommendForPersonality(model.PersonalityActiveEnergizer, catalog())

	require.Len(t, got, 3)
	for _, a := range got {
		assert.Contains(t, []string{"movement", "breathing"}, a.Category)
	}
}

func TestRecommendForPersonalityUnmappedTypeGetsFullCatalog(t *testing.T) {
	for _, p := range []model.PersonalityType{
		model.PersonalityBalanced,
		model.PersonalitySocialConnector,
		model.PersonalityCreativeExplorer,
	} {
		got := RecommendForPersonality(p, catalog())
		assert.Len(t, got, len(catalog()), "personality %s", p)
	}
}

func TestRecommendForPersonalityCapsAtSix(t *testing.T) {
	activities := make([]model.Activity, 0, 10)
	for i := 0; i < 10; i++ {
		activities = append(activities, model.Activity{
			Title:    fmt.Sprintf("Breathing %d", i),
			Category: "breathing",
		})
	}

	got := RecommendForPersonality(model.PersonalityCalmSeeker, activities)
	assert.Len(t, got, 6)
}

func TestRecommendForPersonalityEmptyCatalog(t *testing.T) {
	got := RecommendForPersonality(model.PersonalityCalmSeeker, nil)
	assert.Empty(t, got)
}
