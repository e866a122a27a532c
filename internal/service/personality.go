package service

import "anchorpoint_backend/internal/model"

// personalityOrder fixes both the answer-code mapping (index == code) and
// the tie-break: the earliest category wins a tie, so an all-zero count
// (empty answers, or only out-of-range codes) yields calm-seeker.
var personalityOrder = [...]model.PersonalityType{
	model.PersonalityCalmSeeker,
	model.PersonalitySocialConnector,
	model.PersonalityCreativeExplorer,
	model.PersonalityActiveEnergizer,
}

// ClassifyPersonality maps quiz answers to the plurality personality type.
// Codes outside [0,3] are ignored. Never fails.
func ClassifyPersonality(answers []int) model.PersonalityType {
	var counts [len(personalityOrder)]int
	for _, code := range answers {
		if code >= 0 && code < len(personalityOrder) {
			counts[code]++
		}
	}

	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return personalityOrder[best]
}
