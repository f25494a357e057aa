package main

import "math"

// metValues maps (activity type, intensity) to a MET coefficient
// (kcal per kg of bodyweight per hour). Values follow the Compendium of
// Physical Activities, coarsened to three intensity bands per activity.
// Also the single source of truth for valid activity types and intensities
// in createActivity validation.
var metValues = map[string]map[string]float64{
	"walking":  {"low": 2.5, "moderate": 3.5, "high": 4.5},
	"running":  {"low": 6.0, "moderate": 8.0, "high": 11.0},
	"cycling":  {"low": 4.0, "moderate": 6.8, "high": 10.0},
	"gym":      {"low": 3.0, "moderate": 5.0, "high": 8.0},
	"yoga":     {"low": 2.5, "moderate": 3.0, "high": 4.0},
	"swimming": {"low": 4.0, "moderate": 6.0, "high": 10.0},
	"sports":   {"low": 4.0, "moderate": 6.0, "high": 8.0},
	"dancing":  {"low": 3.0, "moderate": 4.5, "high": 6.0},
	"hiking":   {"low": 4.0, "moderate": 6.0, "high": 8.0},
	"other":    {"low": 3.0, "moderate": 4.0, "high": 6.0},
}

// fallbackMET is used when an (activity, intensity) pair has no table entry:
// a moderate "other" effort. One of the two permissive defaults in the whole
// calculation path; the other is defaultBodyWeightKG.
const fallbackMET = 3.0

// defaultBodyWeightKG is assumed when the user hasn't recorded a weight.
const defaultBodyWeightKG = 70

// estimateBurn returns the estimated calories burned for an activity:
// MET × bodyweight (kg) × duration (hours), rounded to the nearest kcal.
// Callers validate durationMinutes to [1, 1440] before invoking.
func estimateBurn(activityType, intensity string, durationMinutes int, bodyWeightKG float64) int {
	met := fallbackMET
	if byIntensity, ok := metValues[activityType]; ok {
		if m, ok := byIntensity[intensity]; ok {
			met = m
		}
	}
	if bodyWeightKG <= 0 {
		bodyWeightKG = defaultBodyWeightKG
	}
	return int(math.Round(met * bodyWeightKG * (float64(durationMinutes) / 60)))
}
