package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger middleware logs HTTP requests
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method

		if raw != "" {
			path = path + "?" + raw
		}

		entry := logrus.WithFields(logrus.Fields{
			"status":  statusCode,
			"latency": latency.String(),
			"ip":      clientIP,
		})
		if len(c.Errors) > 0 {
			entry.Errorf("[%s] %s %s", method, path, c.Errors.String())
			return
		}
		entry.Infof("[%s] %s", method, path)
	}
}
