package main

import "testing"

// TestEstimateBurn_KnownEntries verifies the MET formula against table
// entries with hand-computed expectations.
func TestEstimateBurn_KnownEntries(t *testing.T) {
	cases := []struct {
		name         string
		activityType string
		intensity    string
		minutes      int
		weightKG     float64
		want         int
	}{
		// round(11.0 × 70 × 1)
		{"running high 60min", "running", "high", 60, 70, 770},
		// round(2.5 × 70 × 0.5) = round(87.5)
		{"walking low 30min", "walking", "low", 30, 70, 88},
		// round(6.8 × 80 × 0.75)
		{"cycling moderate 45min", "cycling", "moderate", 45, 80, 408},
		// round(3.0 × 55 × 2)
		{"yoga moderate 120min", "yoga", "moderate", 120, 55, 330},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := estimateBurn(tc.activityType, tc.intensity, tc.minutes, tc.weightKG)
			if got != tc.want {
				t.Errorf("estimateBurn = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestEstimateBurn_DefaultWeight verifies the 70 kg fallback when no
// bodyweight is available (zero or negative).
func TestEstimateBurn_DefaultWeight(t *testing.T) {
	// round(2.5 × 70 × 0.5) = 88
	if got := estimateBurn("walking", "low", 30, 0); got != 88 {
		t.Errorf("estimateBurn with zero weight = %d, want 88", got)
	}
	if got := estimateBurn("walking", "low", 30, -5); got != 88 {
		t.Errorf("estimateBurn with negative weight = %d, want 88", got)
	}
}

// TestEstimateBurn_UnknownComboFallback verifies the MET 3.0 fallback for
// combinations outside the table — a moderate "other" baseline, not an error.
func TestEstimateBurn_UnknownComboFallback(t *testing.T) {
	// round(3.0 × 100 × 1)
	if got := estimateBurn("skydiving", "extreme", 60, 100); got != 300 {
		t.Errorf("estimateBurn unknown combo = %d, want 300", got)
	}
	// Known type with unknown intensity falls back the same way
	if got := estimateBurn("running", "brutal", 60, 100); got != 300 {
		t.Errorf("estimateBurn unknown intensity = %d, want 300", got)
	}
}

// TestMETTableComplete guards the lookup table: all 10 activity types carry
// all 3 intensity bands with positive MET values.
func TestMETTableComplete(t *testing.T) {
	if len(metValues) != 10 {
		t.Fatalf("MET table has %d activity types, want 10", len(metValues))
	}
	for activityType, byIntensity := range metValues {
		for _, intensity := range []string{"low", "moderate", "high"} {
			met, ok := byIntensity[intensity]
			if !ok {
				t.Errorf("%s is missing intensity %s", activityType, intensity)
				continue
			}
			if met <= 0 {
				t.Errorf("%s/%s MET = %v, want > 0", activityType, intensity, met)
			}
		}
	}
}

// TestEstimateBurn_NeverNegative sweeps the whole table at the duration
// bounds — no combination may produce a negative estimate.
func TestEstimateBurn_NeverNegative(t *testing.T) {
	for activityType, byIntensity := range metValues {
		for intensity := range byIntensity {
			for _, minutes := range []int{1, 1440} {
				if got := estimateBurn(activityType, intensity, minutes, 20); got < 0 {
					t.Errorf("estimateBurn(%s, %s, %d) = %d, want >= 0",
						activityType, intensity, minutes, got)
				}
			}
		}
	}
}
