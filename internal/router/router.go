package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/birthday-wall/config"
	_ "github.com/lshigami/birthday-wall/docs" // swagger spec
	"github.com/lshigami/birthday-wall/internal/controller"
	"github.com/lshigami/birthday-wall/internal/controller/guestbook"
	"github.com/lshigami/birthday-wall/internal/controller/quiz"
	"github.com/lshigami/birthday-wall/internal/middleware"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewEngine builds the gin engine with logging, recovery, CORS and the Swagger UI.
func NewEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[middleware.RequestIDKey].(string)
		log.Info().
			Str("request_id", requestID).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.Server.AllowOrigins)))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// Register mounts the API routes.
func Register(
	r *gin.Engine,
	quizCtrl *quiz.QuizController,
	guestbookCtrl *guestbook.GuestbookController,
	healthCtrl *controller.HealthController,
) {
	r.GET("/healthz", healthCtrl.Health)

	posts := r.Group("/birthday-posts")
	{
		posts.GET("", guestbookCtrl.ListPosts)
		posts.POST("", guestbookCtrl.CreatePost)
	}

	trivia := r.Group("/trivia")
	{
		trivia.POST("", quizCtrl.SubmitTrivia)
		trivia.GET("/leaderboard", quizCtrl.GetLeaderboard)
		trivia.GET("/questions", quizCtrl.GetQuestions)
	}
}
