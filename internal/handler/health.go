package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Root answers GET / with a fixed greeting.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "OmniSystem API")
}

// Ping answers GET /ping.
func Ping(c *gin.Context) {
	respond(c, http.StatusOK, "pong")
}

// Health checks DB and Redis connectivity; never exposes credentials or
// internals. Redis reports "disabled" when it is not configured.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			}
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, &apierror.Envelope{
			Success: status == http.StatusOK,
			Data: gin.H{
				"db":    dbStatus,
				"redis": redisStatus,
			},
		})
	}
}
