package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/i18n"
)

// TimeoutConfig holds configuration for the request timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is the fallback message when no translator is registered.
	ErrorMessage string
}

// DefaultTimeoutConfig returns the default timeout configuration.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout answers 504 Gateway Timeout for requests that exceed the
// configured duration. The handler chain runs in its own goroutine with a
// deadline on the request context, so slow repository calls observe the
// cancellation and stop early.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		var mu sync.Mutex
		var finished bool

		done := make(chan struct{})
		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			// The handler may have written a response between the deadline
			// firing and this branch running.
			mu.Lock()
			defer mu.Unlock()
			if finished || c.Writer.Written() {
				return
			}

			message := cfg.ErrorMessage
			if translator := i18n.GetTranslator(); translator != nil {
				message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			}
			errorResp := dto.NewError(dto.ErrCodeTimeout, message).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
		}
	}
}

// TimeoutWithDuration returns the timeout middleware with the given
// duration and default error handling.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
