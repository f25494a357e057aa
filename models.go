package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. Profile fields are nullable until the user
// completes setup; assessment fields are the denormalized output of
// computeAssessment and are only ever written by updateProfile (all at once,
// in the same UPDATE as the profile fields they derive from).
type user struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	AuthToken string `json:"-" db:"auth_token"`
	Password  string `json:"-" db:"password"`

	Age           *int     `json:"age" db:"age"`
	Sex           *string  `json:"sex" db:"sex"`
	HeightCM      *float64 `json:"height_cm" db:"height_cm"`
	WeightKG      *float64 `json:"weight_kg" db:"weight_kg"`
	ActivityLevel *string  `json:"activity_level" db:"activity_level"`
	Goal          *string  `json:"goal" db:"goal"`
	DietType      *string  `json:"diet_type" db:"diet_type"`

	BMR            *float64 `json:"bmr" db:"bmr"`
	TDEE           *float64 `json:"tdee" db:"tdee"`
	CalorieTarget  *int     `json:"calorie_target" db:"calorie_target"`
	ProteinTargetG *float64 `json:"protein_target_g" db:"protein_target_g"`
	CarbsTargetG   *float64 `json:"carbs_target_g" db:"carbs_target_g"`
	FatTargetG     *float64 `json:"fat_target_g" db:"fat_target_g"`

	CustomCalorieTarget *int `json:"custom_calorie_target" db:"custom_calorie_target"`
	UseCustomTarget     bool `json:"use_custom_target" db:"use_custom_target"`

	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// profile is the validated input to computeAssessment. Built by updateProfile
// after range validation — computeAssessment re-checks the enums itself so it
// stays total on its own.
type profile struct {
	Age           int
	Sex           string
	HeightCM      float64
	WeightKG      float64
	ActivityLevel string
	Goal          string
	DietType      string
}

// macroTargets is the macro-nutrient breakdown in grams per day.
type macroTargets struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// assessmentResult is the output of computeAssessment. BMR and TDEE stay
// unrounded floats; CalorieTarget is rounded to the nearest kcal and the
// macro grams derive from the rounded target so stored totals reproduce
// exactly downstream.
type assessmentResult struct {
	BMR           float64      `json:"bmr"`
	TDEE          float64      `json:"tdee"`
	CalorieTarget int          `json:"calorie_target"`
	Macros        macroTargets `json:"macros"`
}

// mealFoodItem is one food within a meal: per-unit macros plus a quantity.
// Stored as jsonb on the meal row so the snapshot survives later edits to
// the food database.
type mealFoodItem struct {
	FoodName     string  `json:"food_name"`
	Quantity     float64 `json:"quantity"`
	BaseCalories float64 `json:"base_calories"`
	BaseProteinG float64 `json:"base_protein_g"`
	BaseCarbsG   float64 `json:"base_carbs_g"`
	BaseFatG     float64 `json:"base_fat_g"`
}

// mealLogEntry maps to meal_log. The aggregate calories/protein/carbs/fat are
// quantity-weighted sums over Foods computed once at creation — immutable
// snapshots, never recomputed on read.
type mealLogEntry struct {
	ID         int            `json:"id" db:"id"`
	UserID     int            `json:"user_id" db:"user_id"`
	OccurredAt time.Time      `json:"occurred_at" db:"occurred_at"`
	MealType   string         `json:"meal_type" db:"meal_type"`
	FoodName   string         `json:"food_name" db:"food_name"`
	Calories   int            `json:"calories" db:"calories"`
	ProteinG   float64        `json:"protein_g" db:"protein_g"`
	CarbsG     float64        `json:"carbs_g" db:"carbs_g"`
	FatG       float64        `json:"fat_g" db:"fat_g"`
	Foods      []mealFoodItem `json:"foods" db:"foods"`
	CreatedAt  *time.Time     `json:"created_at" db:"created_at"`
}

// activityLogEntry maps to activity_log. CaloriesBurned is computed at
// creation from (type, intensity, duration, bodyweight) and never updated.
type activityLogEntry struct {
	ID              int        `json:"id" db:"id"`
	UserID          int        `json:"user_id" db:"user_id"`
	OccurredAt      time.Time  `json:"occurred_at" db:"occurred_at"`
	ActivityType    string     `json:"activity_type" db:"activity_type"`
	Intensity       string     `json:"intensity" db:"intensity"`
	DurationMinutes int        `json:"duration_minutes" db:"duration_minutes"`
	CaloriesBurned  int        `json:"calories_burned" db:"calories_burned"`
	Notes           *string    `json:"notes" db:"notes"`
	CreatedAt       *time.Time `json:"created_at" db:"created_at"`
}

// weightEntry maps to weight_log. One row per user per date (upsert on POST).
type weightEntry struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Date      DateOnly   `json:"date" db:"date"`
	WeightKG  float64    `json:"weight_kg" db:"weight_kg"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

/* ─── Derived shapes (computed on demand, not persisted) ─────────────── */

// mealDaySummary is one calendar day's meal totals from aggregateMeals.
type mealDaySummary struct {
	Date          DateOnly `json:"date"`
	TotalCalories int      `json:"total_calories"`
	TotalProteinG float64  `json:"total_protein_g"`
	TotalCarbsG   float64  `json:"total_carbs_g"`
	TotalFatG     float64  `json:"total_fat_g"`
	MealCount     int      `json:"meal_count"`
}

// activityDaySummary is one calendar day's activity totals.
type activityDaySummary struct {
	Date                DateOnly `json:"date"`
	TotalCaloriesBurned int      `json:"total_calories_burned"`
	TotalDuration       int      `json:"total_duration_minutes"`
	ActivityCount       int      `json:"activity_count"`
}

// complianceVerdict labels a day's intake against a calorie target.
// Deviation is signed (total − target); DeviationPct is its magnitude as a
// percentage of the target.
type complianceVerdict struct {
	Status       string  `json:"status"`
	Deviation    int     `json:"deviation"`
	DeviationPct float64 `json:"deviation_pct"`
}

// mealHistoryDay is one entry in the GET /api/meals/history response: a day
// summary plus its verdict against the user's active target.
type mealHistoryDay struct {
	Date          DateOnly `json:"date"`
	TotalCalories int      `json:"total_calories"`
	TotalProteinG float64  `json:"total_protein_g"`
	TotalCarbsG   float64  `json:"total_carbs_g"`
	TotalFatG     float64  `json:"total_fat_g"`
	MealCount     int      `json:"meal_count"`
	Target        int      `json:"target"`
	Status        string   `json:"status"`
	Deviation     int      `json:"deviation"`
	DeviationPct  float64  `json:"deviation_pct"`
}

// mealTotals is the totals block in the GET /api/meals/today response.
type mealTotals struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

/* ─── Request bodies ─────────────────────────────────────────────────── */

// updateProfileRequest is the request body for PUT /api/user/profile.
// All fields are required; pointers distinguish "absent" from zero so the
// validator can report every missing field by name.
type updateProfileRequest struct {
	Age           *int     `json:"age"`
	Sex           *string  `json:"sex"`
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
	DietType      *string  `json:"diet_type"`
}

// updateSettingsRequest is the request body for PUT /api/user/settings.
type updateSettingsRequest struct {
	CustomCalorieTarget *int `json:"custom_calorie_target"`
	UseCustomTarget     bool `json:"use_custom_target"`
}

// createMealRequest is the request body for POST /api/meals. Aggregate totals
// are computed server-side from Foods; clients never send them.
type createMealRequest struct {
	MealType   string         `json:"meal_type"`
	OccurredAt *time.Time     `json:"occurred_at"`
	Foods      []mealFoodItem `json:"foods"`
}

// createActivityRequest is the request body for POST /api/activities.
// CaloriesBurned is computed server-side from the MET table and the user's
// current weight.
type createActivityRequest struct {
	ActivityType    string     `json:"activity_type"`
	Intensity       string     `json:"intensity"`
	DurationMinutes int        `json:"duration_minutes"`
	OccurredAt      *time.Time `json:"occurred_at"`
	Notes           string     `json:"notes"`
}
