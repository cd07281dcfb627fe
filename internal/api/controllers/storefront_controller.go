package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopora/internal/models/db_models"
	"shopora/internal/models/request_models"
	"shopora/internal/services"
	"shopora/pkg/middleware"
	"shopora/pkg/utils"
)

// StorefrontController serves the public shop surface. Stores are addressed
// by domain, never by tenant id; browsing and guest checkout need no account,
// order history and cancellation need a customer token.
type StorefrontController struct {
	storefrontService services.StorefrontServiceInterface
}

func NewStorefrontController(storefrontService services.StorefrontServiceInterface) *StorefrontController {
	return &StorefrontController{
		storefrontService: storefrontService,
	}
}

func (s *StorefrontController) GetStore(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		utils.RespondError(c, http.StatusBadRequest, "Store domain is required")
		return
	}

	store, err := s.storefrontService.GetStore(c.Request.Context(), domain)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, store, "")
}

func (s *StorefrontController) ListProducts(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		utils.RespondError(c, http.StatusBadRequest, "Store domain is required")
		return
	}

	products, err := s.storefrontService.ListProducts(c.Request.Context(), domain)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, products, "")
}

func (s *StorefrontController) RegisterCustomer(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		utils.RespondError(c, http.StatusBadRequest, "Store domain is required")
		return
	}

	var req request_models.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.storefrontService.RegisterCustomer(c.Request.Context(), domain, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Account created successfully")
}

func (s *StorefrontController) LoginCustomer(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		utils.RespondError(c, http.StatusBadRequest, "Store domain is required")
		return
	}

	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.storefrontService.LoginCustomer(c.Request.Context(), domain, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Logged in successfully")
}

// optionalCustomerID pulls the customer id out of a Bearer token when one is
// sent. Checkout stays open to guests, so a missing or stale token is not
// an error here.
func optionalCustomerID(c *gin.Context) *uuid.UUID {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	claims, err := utils.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil || claims.Role != string(db_models.RoleCustomer) {
		return nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	return &id
}

func (s *StorefrontController) PlaceOrder(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		utils.RespondError(c, http.StatusBadRequest, "Store domain is required")
		return
	}

	var req request_models.StorefrontOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := s.storefrontService.PlaceOrder(c.Request.Context(), domain, optionalCustomerID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, order, "Order placed successfully")
}

func (s *StorefrontController) ListMyOrders(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		utils.RespondError(c, http.StatusBadRequest, "Store domain is required")
		return
	}
	customerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	orders, err := s.storefrontService.ListCustomerOrders(c.Request.Context(), domain, customerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, orders, "")
}

func (s *StorefrontController) CancelOrder(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		utils.RespondError(c, http.StatusBadRequest, "Store domain is required")
		return
	}
	customerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := s.storefrontService.CancelOrder(c.Request.Context(), domain, customerID, orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, order, "Order cancelled successfully")
}
