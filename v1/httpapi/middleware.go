package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// traceHeaders are the W3C headers carried across the HTTP boundary.
var traceHeaders = []string{"traceparent", "tracestate", "baggage"}

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}

// traceMiddleware continues the caller's trace, opens a request span and
// returns the request's trace context in the response headers.
func (s *Server) traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		carrier := make(map[string]string, len(traceHeaders))
		for _, h := range traceHeaders {
			if v := c.GetHeader(h); v != "" {
				carrier[h] = v
			}
		}

		route := routeOf(c)
		ctx := s.tracer.SetCarrierOnContext(c.Request.Context(), carrier)
		ctx, span := s.tracer.StartSpan(ctx, c.Request.Method+" "+route)
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		for k, v := range s.tracer.GetCarrier(ctx) {
			c.Header(k, v)
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		s.tracer.SetAttributes(span, map[string]interface{}{
			"http.method": c.Request.Method,
			"http.route":  route,
			"http.status": status,
		})
		s.logger.InfoWithContext(ctx, "Request served", nil, map[string]interface{}{
			"method":   c.Request.Method,
			"route":    route,
			"status":   status,
			"duration": time.Since(start).String(),
		})
	}
}

func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeOf(c)
		s.metrics.IncrementRequests(route, strconv.Itoa(c.Writer.Status()))
		s.metrics.RecordRequestDuration(start, route)
	}
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allowedOrigin != "" {
			c.Header("Access-Control-Allow-Origin", allowedOrigin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
