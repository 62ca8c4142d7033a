package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ardiansf/career-copilot/internal/config"
	"github.com/ardiansf/career-copilot/internal/domain/fiber/handler"
	applogger "github.com/ardiansf/career-copilot/internal/logger"
	"github.com/ardiansf/career-copilot/internal/middleware"
	"github.com/ardiansf/career-copilot/internal/model"
	"github.com/ardiansf/career-copilot/internal/repository"
	"github.com/ardiansf/career-copilot/internal/service"
	"github.com/ardiansf/career-copilot/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	production := appConfig.Env == "production"

	zlog, err := applogger.New(production, !production)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

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
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !production,
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB(zlog)

	employeeRepo := repository.NewEmployeeRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	ai := buildGenerativeService(ctx, zlog)

	pathwayUC := usecase.NewPathwayUsecase(employeeRepo, skillRepo, assessmentRepo, ai, zlog)
	leadershipUC := usecase.NewLeadershipUsecase(employeeRepo, skillRepo, profileRepo, ai, zlog)

	handler.NewPathwayHandler(pathwayUC).RegisterRoutes(app)
	handler.NewLeadershipHandler(leadershipUC).RegisterRoutes(app)
	handler.NewTaxonomyHandler(skillRepo).RegisterRoutes(app)

	zlog.Info("server starting",
		zap.String("port", appConfig.Port),
		zap.String("ai_provider", config.LoadAIConfig().Provider))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("listen", zap.Error(err))
	}
}

func buildGenerativeService(ctx context.Context, zlog *zap.Logger) service.GenerativeTextService {
	switch config.LoadAIConfig().Provider {
	case "gemini":
		gemini, err := service.NewGeminiService(ctx, config.LoadGeminiConfig(), zlog)
		if err != nil {
			zlog.Fatal("init gemini service", zap.Error(err))
		}
		return gemini
	default:
		return service.NewAzureOpenAIService(config.LoadAzureOpenAIConfig(), zlog)
	}
}

func ConnectDB(zlog *zap.Logger) *gorm.DB {
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
		zlog.Fatal("connect database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		zlog.Fatal("get database instance", zap.Error(err))
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

	// migrasi tabel
	err = db.AutoMigrate(
		&model.Employee{},
		&model.Skill{},
		&model.PositionHistory{},
		&model.Project{},
		&model.Experience{},
		&model.PathwayAssessment{},
	)
	if err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	return db
}
