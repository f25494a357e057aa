package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupFoodsTest creates a Gin engine with just the food search route. No DB
// needed — the food database is a static table.
func setupFoodsTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := Handler{}
	router := gin.New()
	// Skip auth middleware for tests — set a dummy user_id
	router.GET("/api/foods", func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Next()
	}, h.searchFoods)
	return router
}

// doFoodsRequest sends a GET to the food search endpoint with the given query.
func doFoodsRequest(router *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/api/foods"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type foodsResponse struct {
	Foods []foodItem `json:"foods"`
	Count int        `json:"count"`
}

func TestSearchFoods_ByName(t *testing.T) {
	router := setupFoodsTest()

	w := doFoodsRequest(router, "?q=biryani")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp foodsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Count != 4 {
		t.Errorf("expected 4 biryani matches, got %d", resp.Count)
	}
	for _, f := range resp.Foods {
		if f.Calories <= 0 {
			t.Errorf("%s has calories %v, want > 0", f.Name, f.Calories)
		}
	}
}

func TestSearchFoods_CaseInsensitive(t *testing.T) {
	router := setupFoodsTest()

	w := doFoodsRequest(router, "?q=PANEER")

	var resp foodsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Count == 0 {
		t.Error("uppercase query returned no matches")
	}
	for _, f := range resp.Foods {
		// Matches come from the name or the Paneer category
		if f.Category != "Paneer" && f.Name != "Paneer Paratha" {
			t.Errorf("unexpected match %q in category %q", f.Name, f.Category)
		}
	}
}

func TestSearchFoods_ByCategory(t *testing.T) {
	router := setupFoodsTest()

	w := doFoodsRequest(router, "?q=dal")

	var resp foodsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Count == 0 {
		t.Fatal("category query returned no matches")
	}
}

func TestSearchFoods_NoMatch(t *testing.T) {
	router := setupFoodsTest()

	w := doFoodsRequest(router, "?q=pizza")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp foodsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("expected 0 matches, got %d", resp.Count)
	}
	// foods must be an empty array, not null
	if resp.Foods == nil {
		t.Error("foods is null, want []")
	}
}

func TestSearchFoods_EmptyQueryCapped(t *testing.T) {
	router := setupFoodsTest()

	w := doFoodsRequest(router, "")

	var resp foodsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Count != maxFoodResults {
		t.Errorf("expected cap of %d results, got %d", maxFoodResults, resp.Count)
	}
}
