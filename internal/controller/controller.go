package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/birthday-wall/internal/dto"
	"github.com/lshigami/birthday-wall/internal/middleware"
	"github.com/lshigami/birthday-wall/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RespondError writes err as a dto.ErrorResponse. Validation failures become 400
// with their own message; everything else is reported under action with the cause
// in details.
func RespondError(ctx *gin.Context, action string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Message})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: action, Details: err.Error()})
	default:
		log.Error().Err(err).Str("requestID", ctx.GetString(middleware.RequestIDKey)).Msg(action)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: action, Details: err.Error()})
	}
}

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health godoc
// @Summary Liveness and database reachability
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse "Database unreachable"
// @Router /healthz [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(pingCtx)
	}
	if err != nil {
		log.Warn().Err(err).Msg("Health: database ping failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}
