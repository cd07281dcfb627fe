package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopora/internal/models/request_models"
	"shopora/internal/services"
	"shopora/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// Initiate godoc
// @Summary Open a gateway checkout session for a plan
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.InitiatePaymentRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/initiate [post]
func (p *PaymentController) Initiate(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	var req request_models.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.paymentService.InitiatePayment(c.Request.Context(), tenantID, req.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Checkout session created")
}

// Success receives the gateway redirect after a completed checkout. The
// callback is re-validated server side before anything is trusted.
func (p *PaymentController) Success(c *gin.Context) {
	var cb request_models.GatewayCallback
	if err := c.ShouldBind(&cb); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid callback payload")
		return
	}

	payment, message, err := p.paymentService.HandlePaymentSuccess(
		c.Request.Context(), cb.TranID, cb.ValID, rawForm(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, payment, message)
}

func (p *PaymentController) Fail(c *gin.Context) {
	var cb request_models.GatewayCallback
	if err := c.ShouldBind(&cb); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid callback payload")
		return
	}

	if err := p.paymentService.HandlePaymentFailed(c.Request.Context(), cb.TranID, rawForm(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Payment marked as failed")
}

// Cancel is the gateway's user-abandoned-checkout callback. Treated the
// same as a failure.
func (p *PaymentController) Cancel(c *gin.Context) {
	var cb request_models.GatewayCallback
	if err := c.ShouldBind(&cb); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid callback payload")
		return
	}

	if err := p.paymentService.HandlePaymentFailed(c.Request.Context(), cb.TranID, rawForm(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Payment cancelled")
}

// IPN is the gateway's server-to-server notification endpoint.
func (p *PaymentController) IPN(c *gin.Context) {
	var cb request_models.GatewayCallback
	if err := c.ShouldBind(&cb); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid callback payload")
		return
	}

	if err := p.paymentService.HandleIPN(c.Request.Context(), cb, rawForm(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "IPN processed")
}

func (p *PaymentController) History(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	payments, err := p.paymentService.GetHistory(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, payments, "")
}

func (p *PaymentController) GetByID(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid payment id")
		return
	}

	payment, err := p.paymentService.GetPayment(c.Request.Context(), tenantID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, payment, "")
}

// VerifyManually re-checks a stuck transaction against the gateway.
func (p *PaymentController) VerifyManually(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	transactionID := c.Param("tranId")
	if transactionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Transaction id is required")
		return
	}

	payment, message, err := p.paymentService.VerifyManually(c.Request.Context(), tenantID, transactionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, payment, message)
}

// rawForm flattens the posted callback body for raw persistence.
func rawForm(c *gin.Context) map[string]interface{} {
	_ = c.Request.ParseForm()
	raw := make(map[string]interface{}, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) == 1 {
			raw[key] = values[0]
		} else {
			raw[key] = values
		}
	}
	return raw
}
