package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopora/internal/models/request_models"
	"shopora/internal/services"
	"shopora/pkg/middleware"
	"shopora/pkg/utils"
)

type TenantController struct {
	tenantService services.TenantServiceInterface
}

func NewTenantController(tenantService services.TenantServiceInterface) *TenantController {
	return &TenantController{
		tenantService: tenantService,
	}
}

// Register godoc
// @Summary Register a new store
// @Description Create a store and its admin account in one call
// @Tags Tenants
// @Accept json
// @Produce json
// @Param request body request_models.RegisterTenantRequest true "Store registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /tenants/register [post]
func (t *TenantController) Register(c *gin.Context) {
	var req request_models.RegisterTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := t.tenantService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Store registered successfully")
}

// GetBrand godoc
// @Summary Get storefront branding
// @Tags Tenants
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /brand [get]
func (t *TenantController) GetBrand(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		utils.RespondError(c, http.StatusForbidden, "No store is linked to this account")
		return
	}

	brand, err := t.tenantService.GetBrand(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, brand, "")
}

// UpdateBrand godoc
// @Summary Update storefront branding
// @Tags Tenants
// @Accept json
// @Produce json
// @Param request body request_models.UpdateBrandRequest true "Branding payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /brand [patch]
func (t *TenantController) UpdateBrand(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		utils.RespondError(c, http.StatusForbidden, "No store is linked to this account")
		return
	}

	var req request_models.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	brand, err := t.tenantService.UpdateBrand(c.Request.Context(), tenantID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, brand, "Branding updated successfully")
}
