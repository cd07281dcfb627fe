package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopora/internal/models/request_models"
	"shopora/internal/services"
	"shopora/pkg/middleware"
	"shopora/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

func tenantIDOrAbort(c *gin.Context) (uuid.UUID, bool) {
	tenantID, found := middleware.TenantID(c)
	if !found {
		utils.RespondError(c, http.StatusForbidden, "No store is linked to this account")
		return uuid.Nil, false
	}
	return tenantID, true
}

// GetCurrent godoc
// @Summary Get the current subscription with derived access status
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/current [get]
func (s *SubscriptionController) GetCurrent(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	detail, err := s.subscriptionService.GetCurrent(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, detail, "")
}

// GetUsage godoc
// @Summary Get current usage against plan quotas
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/usage [get]
func (s *SubscriptionController) GetUsage(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	usage, err := s.subscriptionService.GetUsage(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, usage, "")
}

// GetAccess returns the derived access flags without touching any resource.
func (s *SubscriptionController) GetAccess(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	access, err := s.subscriptionService.CheckAccess(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, access, "")
}

// ActivateTrial godoc
// @Summary Activate the one-time free trial
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/activate-trial [post]
func (s *SubscriptionController) ActivateTrial(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	detail, message, err := s.subscriptionService.ActivateTrial(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, detail, message)
}

// SelectPlan routes to trial activation for the free plan and to a payment
// quotation for paid ones.
func (s *SubscriptionController) SelectPlan(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	var req request_models.SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, message, err := s.subscriptionService.SelectPlan(c.Request.Context(), tenantID, req.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, message)
}

func (s *SubscriptionController) Upgrade(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	var req request_models.SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	quote, err := s.subscriptionService.UpgradePlan(c.Request.Context(), tenantID, req.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quote, "Complete payment to switch plans")
}

func (s *SubscriptionController) Downgrade(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	var req request_models.SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	quote, err := s.subscriptionService.DowngradePlan(c.Request.Context(), tenantID, req.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quote, "Complete payment to switch plans")
}

func (s *SubscriptionController) Renew(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	quote, err := s.subscriptionService.RenewSubscription(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quote, "Complete payment to renew your subscription")
}
