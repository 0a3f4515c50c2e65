package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/mastrino/reflection/config"
	"github.com/mastrino/reflection/database"
	_ "github.com/mastrino/reflection/docs" // Swagger docs - auto-generated
	"github.com/mastrino/reflection/internal/controller"
	"github.com/mastrino/reflection/internal/logger"
	"github.com/mastrino/reflection/internal/mailer"
	"github.com/mastrino/reflection/internal/model"
	"github.com/mastrino/reflection/internal/repository"
	"github.com/mastrino/reflection/internal/service"
)

// @title Decision Reflection API
// @version 1.0
// @description Single-user reflection questionnaire: saves free-text answers with debounced autosave, tracks completion, and emails milestone and final-report notifications.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewAnswerRepository,
			repository.NewProgressRepository,
		),

		// Outbound email
		fx.Provide(
			mailer.NewMailer,
		),

		// Services Layer
		fx.Provide(
			service.NewNotifierService,
			func(
				answerRepo repository.AnswerRepository,
				progressRepo repository.ProgressRepository,
				notifier service.NotifierService,
				cfg *config.Config,
			) service.TrackerService {
				window := time.Duration(cfg.DebounceMs) * time.Millisecond
				return service.NewTrackerService(answerRepo, progressRepo, notifier, window)
			},
			service.NewSubmissionService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewQuestionnaireController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route request logging through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tracker service.TrackerService,
	questionnaireCtrl *controller.QuestionnaireController,
) {
	api := router.Group("/api/v1")
	{
		api.GET("/catalog", questionnaireCtrl.GetCatalog)
		api.GET("/state", questionnaireCtrl.GetState)
		api.PUT("/answers/:key", questionnaireCtrl.SaveAnswer)
		api.POST("/submit", questionnaireCtrl.Submit)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			tracker.Load()
			log.Info().Msgf("Decision Reflection server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			// Flush any edits still sitting in the debounce window.
			tracker.Stop()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB, progressRepo repository.ProgressRepository) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(
		&model.Answer{},
		&model.Progress{},
	); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	// The progress record is a singleton expected to pre-exist with
	// default false flags.
	if err := progressRepo.EnsureExists(); err != nil {
		log.Error().Err(err).Msg("Failed to seed progress record")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
