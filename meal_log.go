package main

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// validMealTypes is the set of allowed values for the meal_type enum.
// Reject unknown values with 400 rather than letting the DB return a cryptic 500.
var validMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// mealDisplayName builds the food_name summary for a meal from its items,
// e.g. "Roti (2x), Dal Tadka".
func mealDisplayName(foods []mealFoodItem) string {
	names := make([]string, len(foods))
	for i, f := range foods {
		if f.Quantity == 1 {
			names[i] = f.FoodName
		} else {
			names[i] = f.FoodName + " (" + strconv.FormatFloat(f.Quantity, 'f', -1, 64) + "x)"
		}
	}
	return strings.Join(names, ", ")
}

// round1 rounds to one decimal place. Per-item macro contributions are rounded
// the same way at creation time so stored aggregates reproduce exactly on
// every later read.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// createMeal inserts a meal entry. The aggregate calories and macros are
// quantity-weighted sums over the submitted items, computed here once and
// stored — they are snapshots and are never recomputed from the food database.
// POST /api/meals.
func (h *Handler) createMeal(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validMealTypes[body.MealType] {
		apiError(c, http.StatusBadRequest, "meal_type must be one of: breakfast, lunch, dinner, snack")
		return
	}
	if len(body.Foods) == 0 {
		apiError(c, http.StatusBadRequest, "at least one food is required")
		return
	}
	for _, f := range body.Foods {
		if f.FoodName == "" {
			apiError(c, http.StatusBadRequest, "every food needs a food_name")
			return
		}
		if f.Quantity < 0.1 {
			apiError(c, http.StatusBadRequest, "food quantity must be at least 0.1")
			return
		}
		if f.BaseCalories < 0 || f.BaseProteinG < 0 || f.BaseCarbsG < 0 || f.BaseFatG < 0 {
			apiError(c, http.StatusBadRequest, "food macros cannot be negative")
			return
		}
	}

	occurredAt := h.now()
	if body.OccurredAt != nil {
		occurredAt = *body.OccurredAt
	}

	// Quantity-weighted totals, rounded per item (calories to whole kcal,
	// macros to 0.1 g) before summing.
	var calories int
	var proteinG, carbsG, fatG float64
	for _, f := range body.Foods {
		calories += int(math.Round(f.BaseCalories * f.Quantity))
		proteinG += round1(f.BaseProteinG * f.Quantity)
		carbsG += round1(f.BaseCarbsG * f.Quantity)
		fatG += round1(f.BaseFatG * f.Quantity)
	}

	foodsJSON, err := json.Marshal(body.Foods)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid foods payload")
		return
	}

	meal, err := queryOne[mealLogEntry](h.db, c,
		`INSERT INTO meal_log (user_id, occurred_at, meal_type, food_name, calories, protein_g, carbs_g, fat_g, foods)
		 VALUES (@userID, @occurredAt, @mealType, @foodName, @calories, @proteinG, @carbsG, @fatG, @foods)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":     userID,
			"occurredAt": occurredAt,
			"mealType":   body.MealType,
			"foodName":   mealDisplayName(body.Foods),
			"calories":   calories,
			"proteinG":   proteinG,
			"carbsG":     carbsG,
			"fatG":       fatG,
			"foods":      string(foodsJSON),
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create meal")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// getTodayMeals returns today's meal entries plus their totals.
// GET /api/meals/today. "Today" uses the same day-boundary rule as history.
func (h *Handler) getTodayMeals(c *gin.Context) {
	userID := c.GetInt("user_id")
	from, to := todayWindow(h.now(), h.loc)

	meals, err := queryMany[mealLogEntry](h.db, c,
		`SELECT * FROM meal_log
		 WHERE user_id = @userID AND occurred_at >= @from AND occurred_at < @to
		 ORDER BY created_at DESC`,
		pgx.NamedArgs{"userID": userID, "from": from, "to": to})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch meals")
		return
	}
	// Ensure meals is an empty array (not null) in JSON
	if meals == nil {
		meals = []mealLogEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals, "totals": sumMealTotals(meals)})
}

// getMealHistory returns day summaries for the trailing 10 days plus today,
// newest first, each labeled against the user's active calorie target. Past
// days are judged against the current target, not the target in effect when
// they were logged.
// GET /api/meals/history.
func (h *Handler) getMealHistory(c *gin.Context) {
	userID := c.GetInt("user_id")
	from, to := historyWindow(h.now(), h.loc)

	u, err := queryOne[user](h.db, c,
		"SELECT * FROM users WHERE id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "user not found")
		return
	}
	target := activeCalorieTarget(&u)

	entries, err := queryMany[mealLogEntry](h.db, c,
		`SELECT * FROM meal_log
		 WHERE user_id = @userID AND occurred_at >= @from AND occurred_at < @to
		 ORDER BY occurred_at DESC`,
		pgx.NamedArgs{"userID": userID, "from": from, "to": to})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch meal history")
		return
	}

	days := aggregateMeals(entries, h.loc)
	history := make([]mealHistoryDay, 0, len(days))
	for _, d := range days {
		verdict, err := classify(d.TotalCalories, target)
		if err != nil {
			apiError(c, http.StatusInternalServerError, "invalid calorie target on record")
			return
		}
		history = append(history, mealHistoryDay{
			Date:          d.Date,
			TotalCalories: d.TotalCalories,
			TotalProteinG: d.TotalProteinG,
			TotalCarbsG:   d.TotalCarbsG,
			TotalFatG:     d.TotalFatG,
			MealCount:     d.MealCount,
			Target:        target,
			Status:        verdict.Status,
			Deviation:     verdict.Deviation,
			DeviationPct:  verdict.DeviationPct,
		})
	}

	c.JSON(http.StatusOK, gin.H{"history": history, "target": target})
}

// deleteMeal removes a meal entry. 404 for an unknown id, 403 when the entry
// belongs to another user — never a silent no-op.
// DELETE /api/meals/:id.
func (h *Handler) deleteMeal(c *gin.Context) {
	userID := c.GetInt("user_id")
	id := c.Param("id")

	var ownerID int
	err := h.db.QueryRow(c, "SELECT user_id FROM meal_log WHERE id = $1", id).Scan(&ownerID)
	if status, msg := checkDeleteOwner(err, ownerID, userID, "meal"); status != 0 {
		apiError(c, status, msg)
		return
	}

	if _, err := h.db.Exec(c, "DELETE FROM meal_log WHERE id = $1", id); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete meal")
		return
	}

	c.Status(http.StatusNoContent)
}
