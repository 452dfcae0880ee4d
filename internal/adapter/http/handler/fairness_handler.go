package handler

import (
	"crypto-casino-core/internal/adapter/http/dto"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"
	"crypto-casino-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// FairnessHandler handles the provably-fair surface: public state, client
// seed control, rotation and wager resolution.
type FairnessHandler struct {
	fairnessSvc ports.FairnessService
}

// NewFairnessHandler creates a new FairnessHandler.
func NewFairnessHandler(fairnessSvc ports.FairnessService) *FairnessHandler {
	return &FairnessHandler{fairnessSvc: fairnessSvc}
}

// GetState handles GET /api/v1/fairness: the secret-free view of the
// session's committed randomness.
func (h *FairnessHandler) GetState(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.fairnessSvc.GetPublicFairnessState(c.Request.Context(), sid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}

// SetClientSeed handles PUT /api/v1/fairness/client-seed.
func (h *FairnessHandler) SetClientSeed(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.SetClientSeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.fairnessSvc.SetClientSeed(c.Request.Context(), sid, req.Seed); err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.fairnessSvc.GetPublicFairnessState(c.Request.Context(), sid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}

// RotateSeed handles POST /api/v1/fairness/rotate: retire the active
// stream, disclose its server seed, assign a fresh one.
func (h *FairnessHandler) RotateSeed(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.RotateSeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	reveal, state, err := h.fairnessSvc.RotateSeed(c.Request.Context(), sid, req.NextClientSeed)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"reveal":   reveal,
		"fairness": state,
	})
}

// ResolveWager handles POST /api/v1/wagers: one hand, end to end.
func (h *FairnessHandler) ResolveWager(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.WagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.fairnessSvc.ResolveHand(c.Request.Context(), ports.WagerRequest{
		SessionID:  sid,
		Stake:      req.Stake,
		RollUnder:  req.RollUnder,
		ClientSeed: req.ClientSeed,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
