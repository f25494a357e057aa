package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// getProfile returns the authenticated user with profile and assessment fields.
// GET /api/user/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	u, err := queryOne[user](h.db, c,
		"SELECT * FROM users WHERE id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "user not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

// validateProfile checks every field of an update request and returns the full
// list of violations — callers see everything wrong with their input at once.
// Enum values are checked against the same lookup tables the formula engine
// reads, so validation and computation can't drift apart.
func validateProfile(body updateProfileRequest) []string {
	var violations []string

	switch {
	case body.Age == nil:
		violations = append(violations, "age is required")
	case *body.Age < 1 || *body.Age > 150:
		violations = append(violations, "age must be between 1 and 150")
	}
	switch {
	case body.Sex == nil:
		violations = append(violations, "sex is required")
	case *body.Sex != "male" && *body.Sex != "female":
		violations = append(violations, "sex must be one of: male, female")
	}
	switch {
	case body.HeightCM == nil:
		violations = append(violations, "height_cm is required")
	case *body.HeightCM < 50 || *body.HeightCM > 300:
		violations = append(violations, "height_cm must be between 50 and 300")
	}
	switch {
	case body.WeightKG == nil:
		violations = append(violations, "weight_kg is required")
	case *body.WeightKG < 20 || *body.WeightKG > 500:
		violations = append(violations, "weight_kg must be between 20 and 500")
	}
	switch {
	case body.ActivityLevel == nil:
		violations = append(violations, "activity_level is required")
	default:
		if _, ok := activityMultipliers[*body.ActivityLevel]; !ok {
			violations = append(violations, "activity_level must be one of: sedentary, light, moderate, active, very_active")
		}
	}
	switch {
	case body.Goal == nil:
		violations = append(violations, "goal is required")
	default:
		if _, ok := goalOffsets[*body.Goal]; !ok {
			violations = append(violations, "goal must be one of: lose, maintain, gain")
		}
	}
	switch {
	case body.DietType == nil:
		violations = append(violations, "diet_type is required")
	default:
		if _, ok := dietMacroSplits[*body.DietType]; !ok {
			violations = append(violations, "diet_type must be one of: balanced, low_carb, high_protein, keto")
		}
	}

	return violations
}

// updateProfile replaces the user's biometric profile and regenerates the
// assessment from it. The profile fields and all derived assessment fields
// are written in one UPDATE so a reader never sees a profile paired with a
// stale assessment; on any failure before that statement the stored record is
// untouched. This handler is the only writer of bmr/tdee/calorie_target and
// the macro targets.
// PUT /api/user/profile.
func (h *Handler) updateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body updateProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if violations := validateProfile(body); len(violations) > 0 {
		apiFieldErrors(c, http.StatusBadRequest, violations)
		return
	}

	assessment, err := computeAssessment(profile{
		Age:           *body.Age,
		Sex:           *body.Sex,
		HeightCM:      *body.HeightCM,
		WeightKG:      *body.WeightKG,
		ActivityLevel: *body.ActivityLevel,
		Goal:          *body.Goal,
		DietType:      *body.DietType,
	})
	if err != nil {
		// Validation already vetted the enums, so this is unreachable short of
		// a table/validator mismatch. Surface it rather than guessing.
		var ipe *invalidProfileError
		if errors.As(err, &ipe) {
			apiError(c, http.StatusBadRequest, ipe.Error())
			return
		}
		apiError(c, http.StatusInternalServerError, "assessment failed")
		return
	}

	u, err := queryOne[user](h.db, c,
		`UPDATE users SET
			age              = @age,
			sex              = @sex,
			height_cm        = @heightCM,
			weight_kg        = @weightKG,
			activity_level   = @activityLevel,
			goal             = @goal,
			diet_type        = @dietType,
			bmr              = @bmr,
			tdee             = @tdee,
			calorie_target   = @calorieTarget,
			protein_target_g = @proteinTargetG,
			carbs_target_g   = @carbsTargetG,
			fat_target_g     = @fatTargetG,
			updated_at       = now()
		 WHERE id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":         userID,
			"age":            *body.Age,
			"sex":            *body.Sex,
			"heightCM":       *body.HeightCM,
			"weightKG":       *body.WeightKG,
			"activityLevel":  *body.ActivityLevel,
			"goal":           *body.Goal,
			"dietType":       *body.DietType,
			"bmr":            assessment.BMR,
			"tdee":           assessment.TDEE,
			"calorieTarget":  assessment.CalorieTarget,
			"proteinTargetG": assessment.Macros.ProteinG,
			"carbsTargetG":   assessment.Macros.CarbsG,
			"fatTargetG":     assessment.Macros.FatG,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u, "assessment": assessment})
}

// validateSettings checks a settings update. Any supplied custom target must
// be in range even when the override is disabled, mirroring the users table
// CHECK constraint so a bad value fails here with 400 rather than surfacing as
// a 500 from the database.
func validateSettings(body updateSettingsRequest) string {
	if body.CustomCalorieTarget != nil &&
		(*body.CustomCalorieTarget < 500 || *body.CustomCalorieTarget > 10000) {
		return "custom_calorie_target must be between 500 and 10000"
	}
	if body.UseCustomTarget && body.CustomCalorieTarget == nil {
		return "custom_calorie_target is required when use_custom_target is enabled"
	}
	return ""
}

// updateSettings updates the custom calorie target override.
// PUT /api/user/settings.
func (h *Handler) updateSettings(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body updateSettingsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateSettings(body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	u, err := queryOne[user](h.db, c,
		`UPDATE users SET
			custom_calorie_target = @customCalorieTarget,
			use_custom_target     = @useCustomTarget,
			updated_at            = now()
		 WHERE id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":              userID,
			"customCalorieTarget": body.CustomCalorieTarget,
			"useCustomTarget":     body.UseCustomTarget,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}
