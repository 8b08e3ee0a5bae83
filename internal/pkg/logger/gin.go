package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupGin wires the access log and panic recovery onto the engine.
func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(p gin.LogFormatterParams) string {
			var traceID string
			if p.Keys != nil {
				if id, ok := p.Keys[TraceIDKey].(string); ok {
					traceID = id
				}
			}

			return fmt.Sprintf(
				`{"time":"%s","level":"INFO","msg":"HTTP_ACCESS","trace_id":"%s","method":"%s","path":"%s","ip":"%s","status":%d,"latency":"%v"}`+"\n",
				p.TimeStamp.Format(time.RFC3339),
				traceID,
				p.Method,
				p.Path,
				p.ClientIP,
				p.StatusCode,
				p.Latency,
			)
		},
	}))

	r.Use(gin.Recovery())
}
