package handler

import (
	"net/http"
	"time"

	"crypto-casino-core/internal/adapter/http/dto"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"
	"crypto-casino-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles session and operator authentication endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// StartSession handles POST /api/v1/sessions. Anonymous: a session id, a
// demo-seeded balance and a JWT are minted in one call.
func (h *AuthHandler) StartSession(c *gin.Context) {
	result, err := h.authSvc.StartSession(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.SessionStartResponse{
		SessionID: result.SessionID.String(),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
		Balance:   result.Balance,
	})
}

// OperatorLogin handles POST /api/v1/auth/operator/login.
func (h *AuthHandler) OperatorLogin(c *gin.Context) {
	var req dto.OperatorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.authSvc.OperatorLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OperatorLoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health, a deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Check(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
