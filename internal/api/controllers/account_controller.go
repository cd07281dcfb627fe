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

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Logged in successfully")
}

// ListCustomers returns the shopper accounts registered on the admin's store.
func (a *AccountController) ListCustomers(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		utils.RespondError(c, http.StatusForbidden, "No store is linked to this account")
		return
	}

	customers, err := a.accountService.ListCustomers(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, customers, "")
}

func (a *AccountController) UpdateCustomerStatus(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		utils.RespondError(c, http.StatusForbidden, "No store is linked to this account")
		return
	}
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	var req request_models.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customer, err := a.accountService.UpdateCustomerStatus(c.Request.Context(), tenantID, userID, *req.IsActive)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, customer, "Customer status updated successfully")
}
