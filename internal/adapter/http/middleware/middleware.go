package middleware

import (
	"net/http"
	"time"

	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"
	"crypto-casino-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderRequestID carries the request id back to the caller.
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxRequestID  = "request_id"
	CtxSessionID  = "session_id"
	CtxOperatorID = "operator_id"
	CtxUsername   = "username"
)

// RequestID assigns a request id to every request. An inbound X-Request-ID
// is honored so callers can correlate retries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// SessionAuth validates a player session JWT and rejects operator tokens.
func SessionAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, tokenSvc)
		if !ok {
			return
		}
		if claims.Operator {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		c.Set(CtxSessionID, claims.SubjectID)
		c.Next()
	}
}

// OperatorAuth validates an operator JWT. Player tokens are refused with a
// distinct forbidden error so misuse is visible in logs.
func OperatorAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, tokenSvc)
		if !ok {
			return
		}
		if !claims.Operator {
			response.Error(c, apperror.ErrOperatorRequired())
			c.Abort()
			return
		}
		c.Set(CtxOperatorID, claims.SubjectID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

func bearerClaims(c *gin.Context, tokenSvc ports.TokenService) (*ports.TokenClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		response.Error(c, apperror.ErrInvalidToken())
		c.Abort()
		return nil, false
	}

	claims, err := tokenSvc.Validate(authHeader[7:])
	if err != nil {
		response.Error(c, apperror.ErrInvalidToken())
		c.Abort()
		return nil, false
	}
	return claims, true
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
