package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Handler holds shared dependencies for all route handlers. loc is the day
// boundary rule used by every today/history query — one consistent rule, or
// entries near midnight would go missing from both. now is injectable so
// tests can pin the clock.
type Handler struct {
	db  *pgxpool.Pool
	loc *time.Location
	now func() time.Time
}

// newHandler wires a Handler with server-local day boundaries and the real clock.
func newHandler(db *pgxpool.Pool) *Handler {
	return &Handler{db: db, loc: time.Local, now: time.Now}
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		log.Printf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		log.Printf("[queryMany] Query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryMany] Scan error: %v", err)
	}
	return results, err
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// checkDeleteOwner maps the result of an ownership lookup to the HTTP outcome
// for a delete: 404 when the row doesn't exist, 403 when it belongs to another
// user, 500 on a store failure. Returns status 0 when the delete may proceed.
// Deleting a nonexistent or foreign row is never a silent no-op.
func checkDeleteOwner(lookupErr error, ownerID, userID int, noun string) (int, string) {
	if lookupErr != nil {
		if errors.Is(lookupErr, pgx.ErrNoRows) {
			return http.StatusNotFound, noun + " not found"
		}
		return http.StatusInternalServerError, "failed to fetch " + noun
	}
	if ownerID != userID {
		return http.StatusForbidden, "not authorized to delete this " + noun
	}
	return 0, ""
}

// apiFieldErrors returns a validation failure listing every violated field,
// not just the first: {"error": "validation failed", "fields": [...]}.
func apiFieldErrors(c *gin.Context, status int, fields []string) {
	c.JSON(status, gin.H{"error": "validation failed", "fields": fields})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. We use a pool (not a single conn)
// because managed Postgres hosts close idle connections after a few minutes.
func getDBPool() *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse DB URL: %v\n", err)
		os.Exit(1)
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from server-side prepared statement caches after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("DB pool ready!")
	return pool
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.POST("/api/auth/register", h.register)
	router.POST("/api/auth/login", h.login)
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "timestamp": h.now().UTC().Format(time.RFC3339)})
	})

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/user/profile", h.getProfile)
	api.PUT("/user/profile", h.updateProfile)
	api.PUT("/user/settings", h.updateSettings)
	api.POST("/meals", h.createMeal)
	api.GET("/meals/today", h.getTodayMeals)
	api.GET("/meals/history", h.getMealHistory)
	api.DELETE("/meals/:id", h.deleteMeal)
	api.POST("/activities", h.createActivity)
	api.GET("/activities/today", h.getTodayActivities)
	api.GET("/activities/history", h.getActivityHistory)
	api.DELETE("/activities/:id", h.deleteActivity)
	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.upsertWeightEntry)
	api.DELETE("/weight-log/:id", h.deleteWeightEntry)
	api.GET("/foods", h.searchFoods)
}
