package handler

import (
	"crypto-casino-core/internal/adapter/http/dto"
	"crypto-casino-core/internal/adapter/http/middleware"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/pkg/apperror"
	"crypto-casino-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultAuditLimit = 100

// AdminHandler handles the operator surface: settlement approval, kill
// switch, pool health, alerts, settings and the audit trail.
type AdminHandler struct {
	settlementSvc ports.SettlementService
	killSwitchSvc ports.KillSwitchService
	poolSvc       ports.PoolService
	alertSvc      ports.AlertService
	settingsSvc   ports.SettingsService
	auditSvc      ports.AuditService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	settlementSvc ports.SettlementService,
	killSwitchSvc ports.KillSwitchService,
	poolSvc ports.PoolService,
	alertSvc ports.AlertService,
	settingsSvc ports.SettingsService,
	auditSvc ports.AuditService,
) *AdminHandler {
	return &AdminHandler{
		settlementSvc: settlementSvc,
		killSwitchSvc: killSwitchSvc,
		poolSvc:       poolSvc,
		alertSvc:      alertSvc,
		settingsSvc:   settingsSvc,
		auditSvc:      auditSvc,
	}
}

// actor returns the operator username set by OperatorAuth.
func actor(c *gin.Context) string {
	return c.GetString(middleware.CtxUsername)
}

// ApproveWithdrawal handles POST /api/v1/admin/withdrawals/:id/approve.
func (h *AdminHandler) ApproveWithdrawal(c *gin.Context) {
	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrWithdrawalNotFound())
		return
	}

	w, err := h.settlementSvc.Approve(c.Request.Context(), withdrawalID, actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWithdrawalResponse(w))
}

// RejectWithdrawal handles POST /api/v1/admin/withdrawals/:id/reject.
func (h *AdminHandler) RejectWithdrawal(c *gin.Context) {
	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrWithdrawalNotFound())
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	w, err := h.settlementSvc.Reject(c.Request.Context(), withdrawalID, actor(c), req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWithdrawalResponse(w))
}

// GetKillSwitch handles GET /api/v1/admin/killswitch.
func (h *AdminHandler) GetKillSwitch(c *gin.Context) {
	state, err := h.killSwitchSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}

// SetKillSwitch handles PUT /api/v1/admin/killswitch.
func (h *AdminHandler) SetKillSwitch(c *gin.Context) {
	var req dto.KillSwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	state, err := h.killSwitchSvc.Set(c.Request.Context(), *req.Active, actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}

// GetPoolHealth handles GET /api/v1/admin/pool/health.
func (h *AdminHandler) GetPoolHealth(c *gin.Context) {
	health, err := h.poolSvc.Health(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, health)
}

// RunAlerts handles POST /api/v1/admin/alerts/run: execute the monitors
// now and return the findings.
func (h *AdminHandler) RunAlerts(c *gin.Context) {
	alerts, err := h.alertSvc.RunChecks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"alerts": alerts})
}

// UpdateSetting handles PUT /api/v1/admin/settings.
func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	var req dto.SettingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.settingsSvc.Update(c.Request.Context(), req.Key, req.Value); err != nil {
		response.Error(c, err)
		return
	}
	h.auditSvc.Record(c.Request.Context(), actor(c), "setting_updated", req.Key+"="+req.Value)

	response.OK(c, gin.H{"key": req.Key, "value": req.Value})
}

// ListAudit handles GET /api/v1/admin/audit.
func (h *AdminHandler) ListAudit(c *gin.Context) {
	actions, err := h.auditSvc.Recent(c.Request.Context(), defaultAuditLimit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"items": actions})
}
