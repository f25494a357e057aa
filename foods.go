package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// foodItem is one entry in the static food database: per-serving macros for a
// named food. Consumed as a lookup source only — meal rows snapshot the
// values they were created with, so editing this table never rewrites history.
type foodItem struct {
	Name     string  `json:"name"`
	Serving  string  `json:"serving"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Category string  `json:"category"`
}

// foodDatabase is the built-in Indian food table.
var foodDatabase = []foodItem{
	// Breads & Grains
	{Name: "Roti", Serving: "1 piece", Calories: 71, ProteinG: 3, CarbsG: 15, FatG: 0.4, Category: "Breads"},
	{Name: "Chapati", Serving: "1 piece", Calories: 104, ProteinG: 3, CarbsG: 18, FatG: 2.5, Category: "Breads"},
	{Name: "Butter Naan", Serving: "1 piece", Calories: 262, ProteinG: 9, CarbsG: 45, FatG: 5, Category: "Breads"},
	{Name: "Garlic Naan", Serving: "1 piece", Calories: 285, ProteinG: 10, CarbsG: 48, FatG: 6, Category: "Breads"},
	{Name: "Plain Paratha", Serving: "1 piece", Calories: 126, ProteinG: 3, CarbsG: 18, FatG: 5, Category: "Breads"},
	{Name: "Aloo Paratha", Serving: "1 piece", Calories: 210, ProteinG: 4, CarbsG: 30, FatG: 8, Category: "Breads"},
	{Name: "Paneer Paratha", Serving: "1 piece", Calories: 290, ProteinG: 12, CarbsG: 28, FatG: 14, Category: "Breads"},
	{Name: "Puri", Serving: "1 piece", Calories: 112, ProteinG: 2, CarbsG: 13, FatG: 6, Category: "Breads"},
	{Name: "Bhatura", Serving: "1 piece", Calories: 250, ProteinG: 5, CarbsG: 35, FatG: 10, Category: "Breads"},
	{Name: "Kulcha", Serving: "1 piece", Calories: 180, ProteinG: 5, CarbsG: 32, FatG: 3, Category: "Breads"},
	{Name: "Thepla", Serving: "1 piece", Calories: 95, ProteinG: 3, CarbsG: 16, FatG: 2, Category: "Breads"},

	// Rice Dishes
	{Name: "White Rice Cooked", Serving: "100g", Calories: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3, Category: "Rice"},
	{Name: "Brown Rice Cooked", Serving: "100g", Calories: 112, ProteinG: 2.6, CarbsG: 24, FatG: 0.9, Category: "Rice"},
	{Name: "Jeera Rice", Serving: "100g", Calories: 180, ProteinG: 3, CarbsG: 32, FatG: 4, Category: "Rice"},
	{Name: "Veg Biryani", Serving: "1 plate", Calories: 380, ProteinG: 8, CarbsG: 58, FatG: 12, Category: "Rice"},
	{Name: "Chicken Biryani", Serving: "1 plate", Calories: 450, ProteinG: 25, CarbsG: 55, FatG: 15, Category: "Rice"},
	{Name: "Mutton Biryani", Serving: "1 plate", Calories: 520, ProteinG: 28, CarbsG: 56, FatG: 20, Category: "Rice"},
	{Name: "Egg Biryani", Serving: "1 plate", Calories: 420, ProteinG: 18, CarbsG: 54, FatG: 14, Category: "Rice"},
	{Name: "Pulao", Serving: "1 plate", Calories: 320, ProteinG: 6, CarbsG: 48, FatG: 10, Category: "Rice"},
	{Name: "Curd Rice", Serving: "100g", Calories: 140, ProteinG: 4, CarbsG: 22, FatG: 4, Category: "Rice"},
	{Name: "Khichdi", Serving: "100g", Calories: 120, ProteinG: 4, CarbsG: 20, FatG: 2, Category: "Rice"},

	// Dals & Lentils
	{Name: "Dal Tadka", Serving: "100g", Calories: 105, ProteinG: 6, CarbsG: 15, FatG: 2.5, Category: "Dal"},
	{Name: "Dal Fry", Serving: "100g", Calories: 120, ProteinG: 7, CarbsG: 16, FatG: 3, Category: "Dal"},
	{Name: "Dal Makhani", Serving: "100g", Calories: 150, ProteinG: 8, CarbsG: 12, FatG: 8, Category: "Dal"},
	{Name: "Rajma", Serving: "100g", Calories: 140, ProteinG: 9, CarbsG: 20, FatG: 3, Category: "Dal"},
	{Name: "Chole", Serving: "100g", Calories: 164, ProteinG: 9, CarbsG: 27, FatG: 3, Category: "Dal"},
	{Name: "Sambar", Serving: "100ml", Calories: 85, ProteinG: 4, CarbsG: 12, FatG: 2, Category: "Dal"},
	{Name: "Moong Dal", Serving: "100g", Calories: 110, ProteinG: 7, CarbsG: 16, FatG: 2, Category: "Dal"},
	{Name: "Toor Dal", Serving: "100g", Calories: 115, ProteinG: 6, CarbsG: 18, FatG: 2.5, Category: "Dal"},

	// Chicken Dishes
	{Name: "Butter Chicken", Serving: "150g", Calories: 280, ProteinG: 22, CarbsG: 8, FatG: 18, Category: "Chicken"},
	{Name: "Chicken Curry", Serving: "150g", Calories: 220, ProteinG: 25, CarbsG: 6, FatG: 10, Category: "Chicken"},
	{Name: "Chicken Tikka", Serving: "100g", Calories: 150, ProteinG: 24, CarbsG: 2, FatG: 5, Category: "Chicken"},
	{Name: "Tandoori Chicken", Serving: "150g", Calories: 180, ProteinG: 28, CarbsG: 3, FatG: 6, Category: "Chicken"},
	{Name: "Chicken 65", Serving: "100g", Calories: 210, ProteinG: 18, CarbsG: 8, FatG: 12, Category: "Chicken"},
	{Name: "Chicken Korma", Serving: "150g", Calories: 310, ProteinG: 20, CarbsG: 10, FatG: 22, Category: "Chicken"},
	{Name: "Chicken Kebab", Serving: "100g", Calories: 165, ProteinG: 22, CarbsG: 3, FatG: 7, Category: "Chicken"},

	// Paneer Dishes
	{Name: "Paneer Tikka", Serving: "100g", Calories: 265, ProteinG: 14, CarbsG: 6, FatG: 20, Category: "Paneer"},
	{Name: "Paneer Butter Masala", Serving: "150g", Calories: 320, ProteinG: 15, CarbsG: 12, FatG: 24, Category: "Paneer"},
	{Name: "Palak Paneer", Serving: "150g", Calories: 280, ProteinG: 14, CarbsG: 10, FatG: 20, Category: "Paneer"},
	{Name: "Kadai Paneer", Serving: "150g", Calories: 290, ProteinG: 13, CarbsG: 11, FatG: 22, Category: "Paneer"},
	{Name: "Shahi Paneer", Serving: "150g", Calories: 340, ProteinG: 14, CarbsG: 14, FatG: 26, Category: "Paneer"},
	{Name: "Paneer Bhurji", Serving: "100g", Calories: 220, ProteinG: 12, CarbsG: 5, FatG: 16, Category: "Paneer"},
	{Name: "Matar Paneer", Serving: "150g", Calories: 260, ProteinG: 12, CarbsG: 15, FatG: 18, Category: "Paneer"},

	// Vegetables
	{Name: "Aloo Gobi", Serving: "100g", Calories: 95, ProteinG: 2, CarbsG: 14, FatG: 3.5, Category: "Vegetables"},
	{Name: "Bhindi Masala", Serving: "100g", Calories: 88, ProteinG: 2, CarbsG: 10, FatG: 4, Category: "Vegetables"},
	{Name: "Baingan Bharta", Serving: "100g", Calories: 110, ProteinG: 2, CarbsG: 12, FatG: 6, Category: "Vegetables"},
}

// maxFoodResults caps the search response; the frontend only shows the top
// dozen anyway.
const maxFoodResults = 25

// searchFoods returns food database entries whose name matches the q param
// (case-insensitive substring). Without q the full table is returned, capped.
// GET /api/foods?q=paneer.
func (h *Handler) searchFoods(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	matches := make([]foodItem, 0, maxFoodResults)
	for _, f := range foodDatabase {
		if q != "" && !strings.Contains(strings.ToLower(f.Name), q) &&
			!strings.Contains(strings.ToLower(f.Category), q) {
			continue
		}
		matches = append(matches, f)
		if len(matches) == maxFoodResults {
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{"foods": matches, "count": len(matches)})
}
