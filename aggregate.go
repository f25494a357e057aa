package main

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// historyDays is the trailing window served by the history endpoints,
// inclusive of today.
const historyDays = 10

// Compliance statuses emitted by classify.
const (
	statusOnTrack = "on-track"
	statusOver    = "over"
	statusUnder   = "under"
)

// complianceTolerancePct is the deviation band (inclusive) that still counts
// as on-track.
const complianceTolerancePct = 10.0

/* ─── Day boundaries ─────────────────────────────────────────────────── */

// The location is an explicit parameter everywhere a calendar day boundary
// matters. Today-queries and history-queries must share one rule or entries
// near midnight silently vanish from both.

// startOfDay returns midnight of t's calendar day in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// todayWindow returns the half-open interval [startOfToday, startOfTomorrow).
func todayWindow(now time.Time, loc *time.Location) (from, to time.Time) {
	from = startOfDay(now, loc)
	return from, from.AddDate(0, 0, 1)
}

// historyWindow returns the half-open interval covering the trailing
// historyDays days plus today: [startOfToday − historyDays, startOfTomorrow).
func historyWindow(now time.Time, loc *time.Location) (from, to time.Time) {
	today := startOfDay(now, loc)
	return today.AddDate(0, 0, -historyDays), today.AddDate(0, 0, 1)
}

/* ─── Daily aggregation ──────────────────────────────────────────────── */

// aggregateMeals groups meal entries by the calendar day of occurred_at in
// loc and sums their stored aggregates. One summary per distinct day present
// in entries, ordered newest-first. Plain additive fold — every entry counts
// exactly once.
func aggregateMeals(entries []mealLogEntry, loc *time.Location) []mealDaySummary {
	byDay := make(map[string]*mealDaySummary)
	for _, e := range entries {
		day := startOfDay(e.OccurredAt, loc)
		key := day.Format("2006-01-02")
		s, ok := byDay[key]
		if !ok {
			s = &mealDaySummary{Date: DateOnly{day}}
			byDay[key] = s
		}
		s.TotalCalories += e.Calories
		s.TotalProteinG += e.ProteinG
		s.TotalCarbsG += e.CarbsG
		s.TotalFatG += e.FatG
		s.MealCount++
	}
	return sortedMealDays(byDay)
}

// aggregateActivities groups activity entries by calendar day in loc,
// newest-first, summing burned calories and duration.
func aggregateActivities(entries []activityLogEntry, loc *time.Location) []activityDaySummary {
	byDay := make(map[string]*activityDaySummary)
	for _, e := range entries {
		day := startOfDay(e.OccurredAt, loc)
		key := day.Format("2006-01-02")
		s, ok := byDay[key]
		if !ok {
			s = &activityDaySummary{Date: DateOnly{day}}
			byDay[key] = s
		}
		s.TotalCaloriesBurned += e.CaloriesBurned
		s.TotalDuration += e.DurationMinutes
		s.ActivityCount++
	}
	out := make([]activityDaySummary, 0, len(byDay))
	for _, s := range byDay {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Time.After(out[j].Date.Time) })
	return out
}

func sortedMealDays(byDay map[string]*mealDaySummary) []mealDaySummary {
	out := make([]mealDaySummary, 0, len(byDay))
	for _, s := range byDay {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Time.After(out[j].Date.Time) })
	return out
}

// sumMealTotals folds a single day's (or any) meal entries into one totals
// block. Used by the today endpoint, where grouping is unnecessary.
func sumMealTotals(entries []mealLogEntry) mealTotals {
	var t mealTotals
	for _, e := range entries {
		t.Calories += e.Calories
		t.ProteinG += e.ProteinG
		t.CarbsG += e.CarbsG
		t.FatG += e.FatG
	}
	return t
}

/* ─── Compliance classification ──────────────────────────────────────── */

// invalidTargetError reports a zero or negative calorie target passed to
// classify. A user always has a positive active target (2000 default), so
// this reaching a caller indicates corrupted settings.
type invalidTargetError struct {
	Target int
}

func (e *invalidTargetError) Error() string {
	return fmt.Sprintf("invalid calorie target %d: must be positive", e.Target)
}

// classify labels a day's intake total against a calorie target. A deviation
// of at most complianceTolerancePct (inclusive) in either direction is
// on-track; beyond that the sign of the deviation decides over vs under.
func classify(totalCalories, target int) (complianceVerdict, error) {
	if target <= 0 {
		return complianceVerdict{}, &invalidTargetError{Target: target}
	}
	deviation := totalCalories - target
	pct := math.Abs(float64(deviation)) / float64(target) * 100

	status := statusOnTrack
	if pct > complianceTolerancePct {
		if deviation > 0 {
			status = statusOver
		} else {
			status = statusUnder
		}
	}
	return complianceVerdict{Status: status, Deviation: deviation, DeviationPct: pct}, nil
}
