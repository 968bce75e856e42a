package main

import (
	"context"
	"log"
	"net/http"
	"runtime"
	"time"

	"swasthprameh/database"
	"swasthprameh/internal/cache"
	"swasthprameh/internal/config"
	"swasthprameh/internal/controllers"
	"swasthprameh/internal/llm"
	"swasthprameh/internal/middleware"
	"swasthprameh/internal/ml"
	"swasthprameh/internal/repository"
	"swasthprameh/internal/services"
	"swasthprameh/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	// Connect to database
	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	onboardingRepo := repository.NewOnboardingRepository(database.DB)
	diagnosisRepo := repository.NewDiagnosisRepository(database.DB)
	planRepo := repository.NewPlanRepository(database.DB)
	feedbackRepo := repository.NewFeedbackRepository(database.DB)
	chatRepo := repository.NewChatRepository(database.DB)

	// Redis is optional; the latest-plan cache degrades to database reads
	planCache, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, latest-plan cache disabled: %v", err)
		planCache = nil
	} else {
		defer planCache.Close()
	}

	// Diagnosis service client
	mlClient, err := ml.NewHTTPMLClient(cfg)
	if err != nil {
		log.Printf("Warning: diagnosis service not configured: %v", err)
		mlClient = nil
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mlClient.HealthCheck(ctx); err != nil {
			log.Printf("Warning: diagnosis service health check failed: %v", err)
			log.Println("The application will start, but predictions will fail until the diagnosis service is available")
		} else {
			log.Println("Diagnosis service connection established successfully")
		}
		cancel()
	}

	// Completion client; nil means plan and chat run in stub mode
	llmClient := llm.NewClient(cfg)
	if llmClient == nil {
		log.Println("Warning: GROQ_API_KEY not set, plan generation and assistant run in stub mode")
	}

	// Initialize services
	planGenerator := services.NewPlanGenerator(llmClient, planRepo, planCache, cfg)
	assistantService := services.NewAssistantService(llmClient, cfg)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo, cfg.JWTSecret)
	onboardingController := controllers.NewOnboardingController(onboardingRepo, userRepo)
	diagnosisController := controllers.NewDiagnosisController(diagnosisRepo, mlClient, cfg.DiagnosisTimeout)
	planController := controllers.NewPlanController(planGenerator, planRepo, onboardingRepo, diagnosisRepo, planCache)
	assistantController := controllers.NewAssistantController(assistantService, onboardingRepo, chatRepo)
	feedbackController := controllers.NewFeedbackController(feedbackRepo)
	chatController := controllers.NewChatController(chatRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "SwasthPrameh API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
		})
	})

	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	routes.RegisterUserRoutes(router, auth, userController)
	routes.RegisterOnboardingRoutes(router, auth, onboardingController)
	routes.RegisterDiagnosisRoutes(router, auth, diagnosisController)
	routes.RegisterPlanRoutes(router, auth, planController)
	routes.RegisterAssistantRoutes(router, auth, assistantController)
	routes.RegisterFeedbackRoutes(router, auth, feedbackController)
	routes.RegisterChatRoutes(router, auth, chatController)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		stats := gin.H{
			"goroutines":      runtime.NumGoroutine(),
			"memory_mb":       m.Alloc / 1024 / 1024,
			"parse_failures":  planGenerator.ParseFailures(),
			"policy_failures": planGenerator.PolicyFailures(),
		}

		if planCache != nil {
			if redisStatus, err := planCache.GetStatus(); err == nil {
				stats["redis"] = redisStatus
			}
		}

		c.JSON(200, stats)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting SwasthPrameh API on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
