// Package main implements the standalone HTTP server for the price
// engine, wired directly to the catalog database.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/door-configurator/price-engine/pkg/engine"
	"github.com/door-configurator/price-engine/pkg/store"
	"github.com/door-configurator/price-engine/pkg/types"
)

const (
	defaultPort     = "8080"
	defaultCurrency = "RUB"
)

// Server represents the price engine HTTP server
type Server struct {
	pool     *pgxpool.Pool
	catalog  *store.Catalog
	currency string
	router   *gin.Engine
}

func main() {
	// Get database URL from environment
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbName := getEnv("DB_NAME", "catalog")
		dbUser := getEnv("DB_USER", "postgres")
		dbPass := getEnv("DB_PASSWORD", "postgres")
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	}

	// Connect to database
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to catalog database")

	catalog, err := store.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to open catalog store: %v", err)
	}
	defer catalog.Close()

	server := &Server{
		pool:     pool,
		catalog:  catalog,
		currency: getEnv("CURRENCY", defaultCurrency),
	}

	// Setup router
	server.setupRouter()

	// Start server
	port := getEnv("PORT", defaultPort)
	log.Printf("Starting price engine server on port %s", port)
	if err := server.router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)
	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(gin.Logger())

	// Health check
	s.router.GET("/health", s.healthHandler)

	// API routes
	api := s.router.Group("/api/v1")
	{
		api.POST("/price", s.priceHandler)
		api.POST("/explain", s.explainHandler)

		// Debug endpoints
		api.GET("/debug/categories", s.debugCategoriesHandler)
	}
}

// PriceRequest represents the request body for price computation
type PriceRequest struct {
	Selection types.Selection `json:"selection" binding:"required"`
}

// priceHandler handles POST /api/v1/price
func (s *Server) priceHandler(c *gin.Context) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := s.buildRequest(c.Request.Context(), req.Selection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := engine.Calculate(*request)
	if err != nil {
		var notFound *types.VariantNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     notFound.Error(),
				"selection": notFound.Selection,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// explainHandler handles POST /api/v1/explain
func (s *Server) explainHandler(c *gin.Context) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := s.catalog.DoorRows(c.Request.Context(), engine.NormalizeSelection(req.Selection).Model)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"steps": engine.Explain(rows, req.Selection)})
}

// debugCategoriesHandler lists row counts per catalog category
func (s *Server) debugCategoriesHandler(c *gin.Context) {
	ctx := c.Request.Context()
	rows, err := s.pool.Query(ctx, `
		SELECT category, COUNT(*)
		FROM catalog_rows
		GROUP BY category
		ORDER BY category
	`)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	var categories []map[string]interface{}
	for rows.Next() {
		var category string
		var count int
		rows.Scan(&category, &count)
		categories = append(categories, map[string]interface{}{
			"category": category,
			"rows":     count,
		})
	}
	c.JSON(200, categories)
}

// buildRequest fetches candidate rows and auxiliary catalogs
func (s *Server) buildRequest(ctx context.Context, sel types.Selection) (*engine.Request, error) {
	normalized := engine.NormalizeSelection(sel)

	rows, err := s.catalog.DoorRows(ctx, normalized.Model)
	if err != nil {
		return nil, err
	}

	req := &engine.Request{
		Rows:      rows,
		Selection: normalized,
		Currency:  s.currency,
	}

	if normalized.HardwareKitRef != "" {
		if req.HardwareKits, err = s.catalog.HardwareKits(ctx); err != nil {
			return nil, err
		}
	}
	if normalized.HandleRef != "" {
		if req.Handles, err = s.catalog.Handles(ctx); err != nil {
			return nil, err
		}
	}

	req.GetLimiter = func(id string) *types.CatalogRow {
		row, err := s.catalog.Limiter(ctx, id)
		if err != nil {
			return nil
		}
		return row
	}
	req.GetOptionRows = func(ids []string) []types.CatalogRow {
		rows, err := s.catalog.OptionRows(ctx, ids)
		if err != nil {
			return nil
		}
		return rows
	}

	return req, nil
}

// healthHandler returns server health status
func (s *Server) healthHandler(c *gin.Context) {
	ctx := c.Request.Context()
	if err := s.pool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": "1.0.0",
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
