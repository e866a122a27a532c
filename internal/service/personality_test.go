package service

import (
	"anchorpoint_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPersonality(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    model.PersonalityType
	}{
		{"plurality wins", []int{0, 0, 0, 1, 1}, model.PersonalityCalmSeeker},
		{"active energizer", []int{3, 3, 1, 3}, model.PersonalityActiveEnergizer},
		{"creative explorer", []int{2, 2, 0}, model.PersonalityCreativeExplorer},
		{"social connector", []int{1, 1}, model.PersonalitySocialConnector},
		{"full tie picks the first category", []int{0, 1, 2, 3}, model.PersonalityCalmSeeker},
		{"two-way tie picks the earlier category", []int{3, 1, 3, 1}, model.PersonalitySocialConnector},
		{"empty answers", []int{}, model.PersonalityCalmSeeker},
		{"nil answers", nil, model.PersonalityCalmSeeker},
		{"out-of-range codes are ignored", []int{9, -1, 42}, model.PersonalityCalmSeeker},
		{"out-of-range mixed with valid", []int{9, 3, -2, 3, 1}, model.PersonalityActiveEnergizer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPersonality(tt.answers))
		})
	}
}
