package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"shopora/internal/models/db_models"
	"shopora/internal/models/request_models"
	"shopora/internal/models/response_models"
	"shopora/internal/repositories"
	"shopora/pkg/sslcommerz"
	"shopora/pkg/utils"
)

// PaymentProvider is the gateway contract: open a checkout session, and
// re-validate a callback server side. Callback bodies are never trusted on
// their own.
type PaymentProvider interface {
	Init(ctx context.Context, req sslcommerz.InitRequest) (*sslcommerz.InitResponse, error)
	Validate(ctx context.Context, validationID string) (*sslcommerz.ValidationResponse, error)
}

type PaymentConfig struct {
	ProviderName string // stored on Payment.Provider
	BackendURL   string // base for gateway callback URLs
}

type PaymentServiceInterface interface {
	InitiatePayment(ctx context.Context, tenantID, planID uuid.UUID) (*response_models.InitiatePaymentResponse, error)
	HandlePaymentSuccess(ctx context.Context, transactionID, validationID string, raw map[string]interface{}) (*db_models.Payment, string, error)
	HandlePaymentFailed(ctx context.Context, transactionID string, raw map[string]interface{}) error
	HandleIPN(ctx context.Context, callback request_models.GatewayCallback, raw map[string]interface{}) error
	GetHistory(ctx context.Context, tenantID uuid.UUID) ([]db_models.Payment, error)
	GetPayment(ctx context.Context, tenantID, paymentID uuid.UUID) (*db_models.Payment, error)
	VerifyManually(ctx context.Context, tenantID uuid.UUID, transactionID string) (*db_models.Payment, string, error)
}

type PaymentService struct {
	paymentRepo      repositories.IPaymentRepository
	planRepo         repositories.IPlanRepository
	subscriptionRepo repositories.ISubscriptionRepository
	tenantRepo       repositories.ITenantRepository
	userRepo         repositories.IUserRepository
	subscriptions    SubscriptionServiceInterface
	notifications    NotificationServiceInterface
	provider         PaymentProvider
	cfg              PaymentConfig
	now              func() time.Time
}

func NewPaymentService(
	paymentRepo repositories.IPaymentRepository,
	planRepo repositories.IPlanRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
	tenantRepo repositories.ITenantRepository,
	userRepo repositories.IUserRepository,
	subscriptions SubscriptionServiceInterface,
	notifications NotificationServiceInterface,
	provider PaymentProvider,
	cfg PaymentConfig,
) PaymentServiceInterface {
	return &PaymentService{
		paymentRepo:      paymentRepo,
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		tenantRepo:       tenantRepo,
		userRepo:         userRepo,
		subscriptions:    subscriptions,
		notifications:    notifications,
		provider:         provider,
		cfg:              cfg,
		now:              time.Now,
	}
}

// InitiatePayment opens a gateway session for a paid plan. If the tenant
// has no subscription row yet, an EXPIRED placeholder is created first so
// the Payment can reference a subscription id before activation.
func (s *PaymentService) InitiatePayment(ctx context.Context, tenantID, planID uuid.UUID) (*response_models.InitiatePaymentResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.NotFoundf("Plan not found")
	}
	if !plan.IsActive {
		return nil, utils.BadRequestf("This plan is no longer available")
	}
	if plan.PriceMinor == 0 {
		return nil, utils.BadRequestf(
			"Free trial does not require payment. Use activate-trial endpoint.")
	}

	sub, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		sub = &db_models.Subscription{
			TenantID:  tenantID,
			PlanID:    planID,
			Status:    db_models.SubStatusExpired,
			StartDate: s.now(),
		}
		if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	admin, err := s.userRepo.FindAdminForTenant(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tenant == nil || admin == nil {
		return nil, utils.NotFoundf("Tenant or admin user not found")
	}

	transactionID := utils.NewTransactionID()
	payment := &db_models.Payment{
		TenantID:       tenantID,
		SubscriptionID: sub.ID,
		AmountMinor:    plan.PriceMinor,
		Currency:       plan.Currency,
		Provider:       s.cfg.ProviderName,
		TransactionID:  transactionID,
		Status:         db_models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	initReq := sslcommerz.InitRequest{
		TotalAmount:     formatAmount(plan.PriceMinor),
		Currency:        plan.Currency,
		TransactionID:   transactionID,
		SuccessURL:      s.cfg.BackendURL + "/api/payments/callback/success",
		FailURL:         s.cfg.BackendURL + "/api/payments/callback/fail",
		CancelURL:       s.cfg.BackendURL + "/api/payments/callback/cancel",
		IPNURL:          s.cfg.BackendURL + "/api/payments/ipn",
		ProductName:     plan.Name + " Plan Subscription",
		ProductCategory: "Subscription",
		ProductProfile:  "general",
		CustomerName:    customerName(admin.Name),
		CustomerEmail:   admin.Email,
		CustomerAddress: tenant.Name,
		CustomerCity:    "Dhaka",
		CustomerState:   "Dhaka",
		CustomerPost:    "1000",
		CustomerCountry: "Bangladesh",
		CustomerPhone:   customerPhone(admin.Phone),
		ShippingMethod:  "NO",
	}

	initResp, err := s.provider.Init(ctx, initReq)
	if err != nil {
		log.Printf("Gateway initialization failed for %s: %v", transactionID, err)
		_ = s.paymentRepo.MarkFailed(ctx, payment.ID, jsonRaw(map[string]interface{}{"error": err.Error()}))
		return nil, utils.BadRequestf("Failed to initiate payment. Please try again.")
	}

	if initResp.Status != sslcommerz.StatusSuccess || initResp.GatewayPageURL == "" {
		_ = s.paymentRepo.MarkFailed(ctx, payment.ID, jsonRaw(initResp))
		reason := initResp.FailedReason
		if reason == "" {
			reason = "Failed to initiate payment"
		}
		log.Printf("Gateway initialization rejected for %s: %s", transactionID, reason)
		return nil, utils.BadRequestf("%s", reason)
	}

	if err := s.paymentRepo.SetRawResponse(ctx, payment.ID, jsonRaw(initResp)); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Payment initiated successfully. Transaction ID: %s", transactionID)

	return &response_models.InitiatePaymentResponse{
		PaymentID:     payment.ID,
		GatewayURL:    initResp.GatewayPageURL,
		TransactionID: transactionID,
		AmountMinor:   plan.PriceMinor,
		Currency:      plan.Currency,
		PlanName:      plan.Name,
	}, nil
}

// HandlePaymentSuccess validates the transaction with the gateway, marks
// the payment PAID and activates the subscription. Re-delivery for an
// already-PAID transaction is a no-op returning the existing record: no
// double activation, no duplicate notification.
func (s *PaymentService) HandlePaymentSuccess(ctx context.Context, transactionID, validationID string, raw map[string]interface{}) (*db_models.Payment, string, error) {
	log.Printf("Payment success callback received: %s, val_id: %s", transactionID, validationID)

	validation, err := s.provider.Validate(ctx, validationID)
	if err != nil {
		log.Printf("Gateway validation call failed for %s: %v", transactionID, err)
		return nil, "", utils.BadRequestf("Payment validation failed")
	}
	if validation.Status != sslcommerz.StatusValid && validation.Status != sslcommerz.StatusValidated {
		log.Printf("Payment validation failed for transaction: %s", transactionID)
		return nil, "", utils.BadRequestf("Payment validation failed")
	}

	payment, err := s.paymentRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, "", utils.NotFoundf("Payment not found")
	}

	if payment.Status == db_models.PaymentStatusPaid {
		log.Printf("Payment already processed for transaction: %s", transactionID)
		return payment, "Payment already processed", nil
	}

	rawWithValidation := map[string]interface{}{"validation": validation}
	for k, v := range raw {
		rawWithValidation[k] = v
	}

	updated, err := s.paymentRepo.MarkPaid(ctx, payment.ID, validationID, jsonRaw(rawWithValidation))
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if !updated {
		// Lost the race against a concurrent duplicate callback.
		payment, err = s.paymentRepo.FindByTransactionID(ctx, transactionID)
		if err != nil || payment == nil {
			return nil, "", utils.ErrDatabaseError
		}
		return payment, "Payment already processed", nil
	}

	if _, err := s.subscriptions.ActivateSubscription(ctx, payment.TenantID, payment.Subscription.PlanID); err != nil {
		return nil, "", err
	}

	s.notifications.Notify(ctx, payment.TenantID,
		"Payment Successful",
		fmt.Sprintf("Your payment of %s %s for %s plan was successful. Your subscription is now active.",
			payment.Currency, formatAmount(payment.AmountMinor), payment.Subscription.Plan.Name),
		db_models.NotifyPaymentSuccess)

	log.Printf("Payment completed and subscription activated. Transaction: %s", transactionID)

	payment.Status = db_models.PaymentStatusPaid
	payment.ValidationID = &validationID
	return payment, "Payment successful and subscription activated", nil
}

// HandlePaymentFailed marks the payment FAILED unconditionally; failure has
// no side effects beyond the notification, so no idempotency guard.
func (s *PaymentService) HandlePaymentFailed(ctx context.Context, transactionID string, raw map[string]interface{}) error {
	payment, err := s.paymentRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		return utils.NotFoundf("Payment not found")
	}

	if err := s.paymentRepo.MarkFailed(ctx, payment.ID, jsonRaw(raw)); err != nil {
		return utils.ErrDatabaseError
	}

	s.notifications.Notify(ctx, payment.TenantID,
		"Payment Failed",
		fmt.Sprintf("Your payment of %s %s for %s plan failed. Please try again.",
			payment.Currency, formatAmount(payment.AmountMinor), payment.Subscription.Plan.Name),
		db_models.NotifyPaymentFailed)

	return nil
}

// HandleIPN routes on the gateway's reported status. Anything that is not
// an explicit VALID/VALIDATED is handled as a failure: unknown or
// malformed payloads never activate a subscription.
func (s *PaymentService) HandleIPN(ctx context.Context, callback request_models.GatewayCallback, raw map[string]interface{}) error {
	if callback.TranID == "" {
		return utils.BadRequestf("IPN payload missing transaction id")
	}
	if callback.Status == sslcommerz.StatusValid || callback.Status == sslcommerz.StatusValidated {
		_, _, err := s.HandlePaymentSuccess(ctx, callback.TranID, callback.ValID, raw)
		return err
	}
	return s.HandlePaymentFailed(ctx, callback.TranID, raw)
}

func (s *PaymentService) GetHistory(ctx context.Context, tenantID uuid.UUID) ([]db_models.Payment, error) {
	payments, err := s.paymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return payments, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, tenantID, paymentID uuid.UUID) (*db_models.Payment, error) {
	payment, err := s.paymentRepo.FindByIDForTenant(ctx, paymentID, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.NotFoundf("Payment not found")
	}
	return payment, nil
}

// VerifyManually is a dev aid: it runs the ordinary success path for a
// tenant's own transaction.
func (s *PaymentService) VerifyManually(ctx context.Context, tenantID uuid.UUID, transactionID string) (*db_models.Payment, string, error) {
	payment, err := s.paymentRepo.FindByTransactionIDForTenant(ctx, transactionID, tenantID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, "", utils.NotFoundf("Payment not found")
	}
	return s.HandlePaymentSuccess(ctx, transactionID, "MANUAL_VERIFICATION", map[string]interface{}{
		"verified_manually": true,
		"verified_at":       s.now().Format(time.RFC3339),
	})
}

func formatAmount(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}

func customerName(name string) string {
	if name == "" {
		return "Customer"
	}
	return name
}

func customerPhone(phone string) string {
	if phone == "" {
		return "01700000000"
	}
	return phone
}

func jsonRaw(v interface{}) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}
