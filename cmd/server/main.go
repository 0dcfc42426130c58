package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/nicholas-gates/book-recommendations/internal/config"
	"github.com/nicholas-gates/book-recommendations/internal/handler"
	"github.com/nicholas-gates/book-recommendations/internal/middleware"
)

func main() {
	godotenv.Load(".env.local")

	env := os.Getenv("ENV")
	log.Printf("[INFO] Starting book recommendation service env=%s", env)

	cfg, err := config.Load()
	if err != nil {
		log.Printf("[WARN] Failed to load config: %v, using defaults", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if err := handler.InitRecommenders(context.Background(), cfg); err != nil {
		log.Printf("[WARN] Failed to initialize recommenders: %v", err)
		log.Println("[WARN] Recommendation endpoints will be unavailable")
	} else {
		log.Println("[INFO] Recommenders initialized successfully")
	}

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	allowedOrigins := []string{}
	if gin.Mode() != gin.ReleaseMode {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173")
	}
	if extraOrigins := os.Getenv("ALLOWED_ORIGINS"); extraOrigins != "" {
		allowedOrigins = append(allowedOrigins, strings.Split(extraOrigins, ",")...)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Initialize rate limiters. Each request costs a Gemini call, so the
	// defaults are deliberately conservative.
	ipLimiter := middleware.NewIPRateLimiter(rate.Every(2*time.Second), 2)
	dailyQuota := middleware.NewDailyQuota(envInt64("DAILY_QUOTA", 200))

	log.Printf("[INFO] Rate limiting enabled (daily quota: %d)", dailyQuota.Remaining())

	// Health check endpoints (outside /api group, no rate limiting)
	r.GET("/health", handler.HandleHealth)
	r.GET("/ready", handler.HandleReadiness)

	api := r.Group("/api")
	limited := middleware.RateLimitMiddleware(ipLimiter, dailyQuota)
	{
		api.POST("/recommendations", limited, handler.HandleRecommend)
		api.POST("/recommendations/media", limited, handler.HandleMedia)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("[INFO] Server ready port=%s allowed_origins=%v", port, allowedOrigins)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}

// envInt64 reads an int64 from the environment, falling back on def
func envInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("[WARN] Invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}
