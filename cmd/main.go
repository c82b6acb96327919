package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/birthday-wall/config"
	"github.com/lshigami/birthday-wall/database"
	"github.com/lshigami/birthday-wall/internal/controller"
	"github.com/lshigami/birthday-wall/internal/controller/guestbook"
	"github.com/lshigami/birthday-wall/internal/controller/quiz"
	"github.com/lshigami/birthday-wall/internal/logger"
	"github.com/lshigami/birthday-wall/internal/repository"
	"github.com/lshigami/birthday-wall/internal/router"
	"github.com/lshigami/birthday-wall/internal/service"
	"github.com/lshigami/birthday-wall/internal/trivia"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// @title Birthday Wall API
// @version 1.0
// @description Birthday message wall and trivia quiz with a live leaderboard.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // shared *gorm.DB pool
			router.NewEngine,
			NewQuestionBank,
			service.NewClock,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTriviaSubmissionRepository,
			repository.NewBirthdayPostRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTriviaService,
			service.NewBirthdayPostService,
		),

		// API Controllers Layer
		fx.Provide(
			quiz.NewQuizController,
			guestbook.NewGuestbookController,
			controller.NewHealthController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(database.AutoMigrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown did not complete cleanly")
	}
}

// NewQuestionBank loads the bank named by TRIVIA_BANK_PATH, or the bundled one.
func NewQuestionBank(cfg *config.Config) (*trivia.Bank, error) {
	bank, err := trivia.LoadBank(cfg.Trivia.BankPath)
	if err != nil {
		return nil, err
	}
	log.Info().Int("questions", bank.Len()).Str("path", cfg.Trivia.BankPath).Msg("Trivia question bank loaded")
	return bank, nil
}

// RegisterRoutesAndStartServer mounts the API routes and ties the HTTP server to the
// app lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	quizCtrl *quiz.QuizController,
	guestbookCtrl *guestbook.GuestbookController,
	healthCtrl *controller.HealthController,
) {
	router.Register(engine, quizCtrl, guestbookCtrl, healthCtrl)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Birthday wall server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
