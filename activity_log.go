package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// validIntensities is the set of allowed intensity values. Activity types are
// validated against the MET table keys — same single-source-of-truth rule as
// the profile enums.
var validIntensities = map[string]bool{
	"low":      true,
	"moderate": true,
	"high":     true,
}

// createActivity inserts an activity entry. Calories burned are estimated
// here, at write time, from the MET table and the user's current weight
// (70 kg when none is recorded) — the stored value is immutable afterwards.
// POST /api/activities.
func (h *Handler) createActivity(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createActivityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, ok := metValues[body.ActivityType]; !ok {
		apiError(c, http.StatusBadRequest, "activity_type must be one of: walking, running, cycling, gym, yoga, swimming, sports, dancing, hiking, other")
		return
	}
	if !validIntensities[body.Intensity] {
		apiError(c, http.StatusBadRequest, "intensity must be one of: low, moderate, high")
		return
	}
	if body.DurationMinutes < 1 || body.DurationMinutes > 1440 {
		apiError(c, http.StatusBadRequest, "duration_minutes must be between 1 and 1440")
		return
	}
	if len(body.Notes) > 500 {
		apiError(c, http.StatusBadRequest, "notes must be at most 500 characters")
		return
	}

	// Use the user's recorded weight when present; estimateBurn falls back to
	// the 70 kg default otherwise.
	var weightKG float64
	var stored *float64
	err := h.db.QueryRow(c, "SELECT weight_kg FROM users WHERE id = $1", userID).Scan(&stored)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if stored != nil {
		weightKG = *stored
	}

	occurredAt := h.now()
	if body.OccurredAt != nil {
		occurredAt = *body.OccurredAt
	}

	burned := estimateBurn(body.ActivityType, body.Intensity, body.DurationMinutes, weightKG)

	activity, err := queryOne[activityLogEntry](h.db, c,
		`INSERT INTO activity_log (user_id, occurred_at, activity_type, intensity, duration_minutes, calories_burned, notes)
		 VALUES (@userID, @occurredAt, @activityType, @intensity, @durationMinutes, @caloriesBurned, @notes)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":          userID,
			"occurredAt":      occurredAt,
			"activityType":    body.ActivityType,
			"intensity":       body.Intensity,
			"durationMinutes": body.DurationMinutes,
			"caloriesBurned":  burned,
			"notes":           body.Notes,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"activity": activity})
}

// getTodayActivities returns today's activity entries and the total calories
// burned, newest first.
// GET /api/activities/today.
func (h *Handler) getTodayActivities(c *gin.Context) {
	userID := c.GetInt("user_id")
	from, to := todayWindow(h.now(), h.loc)

	activities, err := queryMany[activityLogEntry](h.db, c,
		`SELECT * FROM activity_log
		 WHERE user_id = @userID AND occurred_at >= @from AND occurred_at < @to
		 ORDER BY created_at DESC`,
		pgx.NamedArgs{"userID": userID, "from": from, "to": to})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch activities")
		return
	}
	// Ensure activities is an empty array (not null) in JSON
	if activities == nil {
		activities = []activityLogEntry{}
	}

	var totalBurned int
	for _, a := range activities {
		totalBurned += a.CaloriesBurned
	}

	c.JSON(http.StatusOK, gin.H{
		"activities":            activities,
		"total_calories_burned": totalBurned,
	})
}

// getActivityHistory returns per-day activity totals for the trailing 10 days
// plus today, newest first.
// GET /api/activities/history.
func (h *Handler) getActivityHistory(c *gin.Context) {
	userID := c.GetInt("user_id")
	from, to := historyWindow(h.now(), h.loc)

	entries, err := queryMany[activityLogEntry](h.db, c,
		`SELECT * FROM activity_log
		 WHERE user_id = @userID AND occurred_at >= @from AND occurred_at < @to
		 ORDER BY occurred_at DESC`,
		pgx.NamedArgs{"userID": userID, "from": from, "to": to})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch activity history")
		return
	}

	history := aggregateActivities(entries, h.loc)

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// deleteActivity removes an activity entry. 404 for an unknown id, 403 when
// the entry belongs to another user — never a silent no-op.
// DELETE /api/activities/:id.
func (h *Handler) deleteActivity(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	var ownerID int
	err := h.db.QueryRow(c, "SELECT user_id FROM activity_log WHERE id = $1", id).Scan(&ownerID)
	if status, msg := checkDeleteOwner(err, ownerID, userID, "activity"); status != 0 {
		apiError(c, status, msg)
		return
	}

	if _, err := h.db.Exec(c, "DELETE FROM activity_log WHERE id = $1", id); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete activity")
		return
	}

	c.Status(http.StatusNoContent)
}
