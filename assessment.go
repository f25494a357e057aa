package main

import (
	"fmt"
	"math"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels — also used
// for input validation in updateProfile.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// goalOffsets maps goal strings to the kcal adjustment applied on top of TDEE.
// The lose offset is not floor-clamped against a minimum safe intake; a small
// sedentary profile can produce a very low target. Known gap, kept to match
// the numbers users already have.
var goalOffsets = map[string]float64{
	"lose":     -500,
	"maintain": 0,
	"gain":     500,
}

// macroSplit is a diet type's share of the calorie target per macro.
// The three fractions sum to 1.0 for every entry.
type macroSplit struct {
	ProteinPct float64
	CarbsPct   float64
	FatPct     float64
}

// dietMacroSplits maps diet types to their macro split.
var dietMacroSplits = map[string]macroSplit{
	"balanced":     {ProteinPct: 0.30, CarbsPct: 0.40, FatPct: 0.30},
	"low_carb":     {ProteinPct: 0.35, CarbsPct: 0.25, FatPct: 0.40},
	"high_protein": {ProteinPct: 0.40, CarbsPct: 0.30, FatPct: 0.30},
	"keto":         {ProteinPct: 0.25, CarbsPct: 0.05, FatPct: 0.70},
}

// kcal per gram of each macro.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// invalidProfileError reports an enum field that resolved to no known mapping
// entry. Validation in updateProfile should catch these first; reaching this
// error from a stored profile indicates a data-integrity bug.
type invalidProfileError struct {
	Field string
	Value string
}

func (e *invalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: unknown %s %q", e.Field, e.Value)
}

// computeAssessment derives BMR (Mifflin-St Jeor), TDEE, the daily calorie
// target, and the macro gram targets from a biometric profile. Pure and
// deterministic: identical input yields identical output.
//
// The calorie target is rounded to the nearest kcal before the macro split is
// applied, so macro grams always reconstruct the stored target.
func computeAssessment(p profile) (assessmentResult, error) {
	if p.Sex != "male" && p.Sex != "female" {
		return assessmentResult{}, &invalidProfileError{Field: "sex", Value: p.Sex}
	}
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return assessmentResult{}, &invalidProfileError{Field: "activity_level", Value: p.ActivityLevel}
	}
	offset, ok := goalOffsets[p.Goal]
	if !ok {
		return assessmentResult{}, &invalidProfileError{Field: "goal", Value: p.Goal}
	}
	split, ok := dietMacroSplits[p.DietType]
	if !ok {
		return assessmentResult{}, &invalidProfileError{Field: "diet_type", Value: p.DietType}
	}

	// BMR via Mifflin-St Jeor: different constant for male vs female
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * mult
	target := int(math.Round(tdee + offset))

	return assessmentResult{
		BMR:           bmr,
		TDEE:          tdee,
		CalorieTarget: target,
		Macros: macroTargets{
			ProteinG: float64(target) * split.ProteinPct / kcalPerGramProtein,
			CarbsG:   float64(target) * split.CarbsPct / kcalPerGramCarbs,
			FatG:     float64(target) * split.FatPct / kcalPerGramFat,
		},
	}, nil
}

// activeCalorieTarget resolves the target a user's intake is judged against:
// the custom target when enabled, otherwise the assessed target, otherwise a
// 2000 kcal default for users who haven't completed their profile yet.
func activeCalorieTarget(u *user) int {
	if u.UseCustomTarget && u.CustomCalorieTarget != nil {
		return *u.CustomCalorieTarget
	}
	if u.CalorieTarget != nil {
		return *u.CalorieTarget
	}
	return 2000
}
