package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fadilmartias/skill-verifier/internal/assessment"
	"github.com/fadilmartias/skill-verifier/internal/config"
	"github.com/fadilmartias/skill-verifier/internal/domain/fiber/handler"
	"github.com/fadilmartias/skill-verifier/internal/logger"
	"github.com/fadilmartias/skill-verifier/internal/middleware"
	"github.com/fadilmartias/skill-verifier/internal/model"
	"github.com/fadilmartias/skill-verifier/internal/repository"
	"github.com/fadilmartias/skill-verifier/internal/service"
	"github.com/fadilmartias/skill-verifier/internal/store"
	"github.com/fadilmartias/skill-verifier/internal/usecase"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		fmt.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	log, err := logger.New(appConfig.LogJSON, appConfig.LogDebug)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	// The database is optional: grading runs entirely off the in-memory
	// stores, and rows are only mirrored for reporting when DB_HOST is set.
	var repo *repository.AssessmentRepository
	if config.LoadDBConfig().Host != "" {
		repo = repository.NewAssessmentRepository(connectDB(log))
	} else {
		log.Info("no database configured, skipping persistence mirror")
	}

	provider := buildProvider(ctx, appConfig.AIProvider, log)

	claims := assessment.NewClaimTestService(provider, store.NewMemory[assessment.ClaimTest](), log)
	interviews := assessment.NewInterviewService(store.NewMemory[assessment.InterviewSession](), log)
	uc := usecase.NewAssessmentUsecase(claims, interviews, provider, repo, log)
	h := handler.NewAssessmentHandler(uc)
	h.RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Debug("goroutine monitor", zap.Int("active", runtime.NumGoroutine()))
		}
	}()

	log.Info("server starting", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// buildProvider picks the AI backend. Anything unrecognized (including an
// empty value) falls back to the offline keyword scanner so the server
// always boots.
func buildProvider(ctx context.Context, name string, log *zap.Logger) service.AIProvider {
	switch name {
	case "gemini":
		gemini, err := service.NewGeminiService(ctx, log)
		if err != nil {
			log.Warn("gemini unavailable, using keyword fallback", zap.Error(err))
			return service.NewFallbackProvider(log)
		}
		return gemini
	case "openrouter":
		return service.NewOpenRouterService(log)
	default:
		if name != "" {
			log.Warn("unknown AI provider, using keyword fallback", zap.String("provider", name))
		}
		return service.NewFallbackProvider(log)
	}
}

func connectDB(log *zap.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatal("could not get database instance", zap.Error(err))
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.CandidateAssessment{}, &model.InterviewRecord{}); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	return db
}
