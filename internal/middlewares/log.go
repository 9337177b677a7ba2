package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		slog.Debug("Handling request", "method", c.Request.Method, "path", path)

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelWarn
		}
		slog.Log(c.Request.Context(), level, "Finish handling request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"time", elapsed)
	}
}
