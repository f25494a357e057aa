package main

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// validProfile returns a fully-populated profile for tests; individual tests
// override fields to exercise specific paths.
func validProfile() profile {
	return profile{
		Age:           30,
		Sex:           "male",
		HeightCM:      175,
		WeightKG:      75,
		ActivityLevel: "moderate",
		Goal:          "maintain",
		DietType:      "balanced",
	}
}

/* ─── Unknown-enum guard tests ───────────────────────────────────────── */

// TestComputeAssessment_UnknownEnums verifies that every enum field rejects
// unknown values with an invalidProfileError naming the field, rather than
// silently defaulting.
func TestComputeAssessment_UnknownEnums(t *testing.T) {
	cases := []struct {
		name  string
		field string
		mutFn func(p *profile)
	}{
		{"unknown sex", "sex", func(p *profile) { p.Sex = "other" }},
		{"empty sex", "sex", func(p *profile) { p.Sex = "" }},
		{"unknown activity level", "activity_level", func(p *profile) { p.ActivityLevel = "extreme" }},
		{"unknown goal", "goal", func(p *profile) { p.Goal = "bulk" }},
		{"unknown diet type", "diet_type", func(p *profile) { p.DietType = "paleo" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutFn(&p)
			_, err := computeAssessment(p)
			var ipe *invalidProfileError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected invalidProfileError, got %v", err)
			}
			if ipe.Field != tc.field {
				t.Errorf("expected error field %q, got %q", tc.field, ipe.Field)
			}
		})
	}
}

/* ─── BMR / TDEE accuracy tests ──────────────────────────────────────── */

// TestComputeAssessment_MaleBMR verifies the male Mifflin-St Jeor constant.
// 10×75 + 6.25×175 − 5×30 + 5 = 750 + 1093.75 − 150 + 5 = 1698.75
func TestComputeAssessment_MaleBMR(t *testing.T) {
	r, err := computeAssessment(validProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.BMR != 1698.75 {
		t.Errorf("male BMR = %v, want 1698.75", r.BMR)
	}
}

// TestComputeAssessment_FemaleBMR verifies the female constant: same inputs
// as the male test but −161 instead of +5, so 1698.75 − 166 = 1532.75.
func TestComputeAssessment_FemaleBMR(t *testing.T) {
	p := validProfile()
	p.Sex = "female"
	r, err := computeAssessment(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.BMR != 1532.75 {
		t.Errorf("female BMR = %v, want 1532.75", r.BMR)
	}
}

// TestComputeAssessment_TDEE verifies the moderate multiplier:
// 1698.75 × 1.55 = 2633.0625, kept unrounded.
func TestComputeAssessment_TDEE(t *testing.T) {
	r, err := computeAssessment(validProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(r.TDEE-2633.0625) > 1e-9 {
		t.Errorf("TDEE = %v, want 2633.0625", r.TDEE)
	}
}

// TestComputeAssessment_GoalOffsets verifies the calorie target for each goal:
// round(2633.0625) = 2633 maintain, 2133 lose, 3133 gain.
func TestComputeAssessment_GoalOffsets(t *testing.T) {
	cases := []struct {
		goal string
		want int
	}{
		{"maintain", 2633},
		{"lose", 2133},
		{"gain", 3133},
	}
	for _, tc := range cases {
		t.Run(tc.goal, func(t *testing.T) {
			p := validProfile()
			p.Goal = tc.goal
			r, err := computeAssessment(p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.CalorieTarget != tc.want {
				t.Errorf("calorie target = %d, want %d", r.CalorieTarget, tc.want)
			}
		})
	}
}

// TestComputeAssessment_NoIntakeFloor documents that the lose offset is not
// clamped against a minimum safe intake: an implausible minimal profile can
// drive the target arbitrarily low.
func TestComputeAssessment_NoIntakeFloor(t *testing.T) {
	p := profile{
		Age: 150, Sex: "female", HeightCM: 50, WeightKG: 20,
		ActivityLevel: "sedentary", Goal: "lose", DietType: "balanced",
	}
	r, err := computeAssessment(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// BMR = 200 + 312.5 − 750 − 161 = −398.5; TDEE = −478.2; target = −978.
	if r.CalorieTarget != -978 {
		t.Errorf("calorie target = %d, want -978 (no floor applied)", r.CalorieTarget)
	}
}

/* ─── Macro split tests ──────────────────────────────────────────────── */

// TestComputeAssessment_MacroKcalIdentity verifies that for every diet type
// the macro grams reconstruct the rounded calorie target within 1 kcal at
// 4/4/9 kcal per gram.
func TestComputeAssessment_MacroKcalIdentity(t *testing.T) {
	for dietType := range dietMacroSplits {
		t.Run(dietType, func(t *testing.T) {
			p := validProfile()
			p.DietType = dietType
			r, err := computeAssessment(p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			kcal := r.Macros.ProteinG*4 + r.Macros.CarbsG*4 + r.Macros.FatG*9
			if math.Abs(kcal-float64(r.CalorieTarget)) > 1 {
				t.Errorf("macros reconstruct %v kcal, want %d ±1", kcal, r.CalorieTarget)
			}
		})
	}
}

// TestComputeAssessment_MacrosFromRoundedTarget verifies the macro grams
// derive from the rounded integer target, not the raw TDEE+offset float.
func TestComputeAssessment_MacrosFromRoundedTarget(t *testing.T) {
	r, err := computeAssessment(validProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// balanced: 30% protein at 4 kcal/g of the rounded 2633 target
	want := float64(2633) * 0.30 / 4
	if r.Macros.ProteinG != want {
		t.Errorf("protein = %v, want %v (derived from rounded target)", r.Macros.ProteinG, want)
	}
}

// TestComputeAssessment_Deterministic verifies bit-identical output for
// identical input.
func TestComputeAssessment_Deterministic(t *testing.T) {
	a, err1 := computeAssessment(validProfile())
	b, err2 := computeAssessment(validProfile())
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
}

// TestDietMacroSplitsSumToOne guards the lookup table itself: every split's
// fractions must sum to 1.0 or targets stop reconstructing.
func TestDietMacroSplitsSumToOne(t *testing.T) {
	for dietType, split := range dietMacroSplits {
		sum := split.ProteinPct + split.CarbsPct + split.FatPct
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("%s split sums to %v, want 1.0", dietType, sum)
		}
	}
}

/* ─── Active target resolution tests ─────────────────────────────────── */

func TestActiveCalorieTarget(t *testing.T) {
	custom := 1800
	assessed := 2633

	cases := []struct {
		name string
		u    user
		want int
	}{
		{"custom enabled", user{UseCustomTarget: true, CustomCalorieTarget: &custom, CalorieTarget: &assessed}, 1800},
		{"custom disabled", user{UseCustomTarget: false, CustomCalorieTarget: &custom, CalorieTarget: &assessed}, 2633},
		{"custom enabled but unset", user{UseCustomTarget: true, CalorieTarget: &assessed}, 2633},
		{"no assessment yet", user{}, 2000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := activeCalorieTarget(&tc.u); got != tc.want {
				t.Errorf("activeCalorieTarget = %d, want %d", got, tc.want)
			}
		})
	}
}
