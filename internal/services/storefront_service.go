package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shopora/internal/models/db_models"
	"shopora/internal/models/request_models"
	"shopora/internal/models/response_models"
	"shopora/internal/repositories"
	"shopora/pkg/utils"
)

type StorefrontServiceInterface interface {
	GetStore(ctx context.Context, domain string) (*response_models.StorefrontResponse, error)
	ListProducts(ctx context.Context, domain string) ([]response_models.ProductResponse, error)
	RegisterCustomer(ctx context.Context, domain string, req request_models.RegisterCustomerRequest) (*response_models.LoginResponse, error)
	LoginCustomer(ctx context.Context, domain string, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	PlaceOrder(ctx context.Context, domain string, customerID *uuid.UUID, req request_models.StorefrontOrderRequest) (*response_models.OrderResponse, error)
	ListCustomerOrders(ctx context.Context, domain string, customerID uuid.UUID) ([]response_models.OrderResponse, error)
	CancelOrder(ctx context.Context, domain string, customerID, orderID uuid.UUID) (*response_models.OrderResponse, error)
}

type StorefrontService struct {
	tenantRepo       repositories.ITenantRepository
	subscriptionRepo repositories.ISubscriptionRepository
	productRepo      repositories.IProductRepository
	orderRepo        repositories.IOrderRepository
	userRepo         repositories.IUserRepository
	notifications    NotificationServiceInterface
	policy           AccessPolicy
	now              func() time.Time
}

func NewStorefrontService(
	tenantRepo repositories.ITenantRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
	productRepo repositories.IProductRepository,
	orderRepo repositories.IOrderRepository,
	userRepo repositories.IUserRepository,
	notifications NotificationServiceInterface,
	policy AccessPolicy,
) StorefrontServiceInterface {
	return &StorefrontService{
		tenantRepo:       tenantRepo,
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		orderRepo:        orderRepo,
		userRepo:         userRepo,
		notifications:    notifications,
		policy:           policy,
		now:              time.Now,
	}
}

// resolveOpenStore maps a storefront domain to its tenant and verifies the
// store is open to the public: the tenant exists, is active, and its
// subscription still grants access (grace period included).
func (s *StorefrontService) resolveOpenStore(ctx context.Context, domain string) (*db_models.Tenant, *db_models.Subscription, error) {
	tenant, err := s.tenantRepo.FindByDomain(ctx, domain)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if tenant == nil {
		return nil, nil, utils.NotFoundf("Store not found")
	}

	sub, err := s.subscriptionRepo.FindByTenantID(ctx, tenant.ID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, nil, utils.Forbiddenf("This store is currently unavailable")
	}
	access := s.policy.Evaluate(sub, s.now())
	if !access.HasAccess {
		return nil, nil, utils.Forbiddenf("This store is currently unavailable")
	}
	return tenant, sub, nil
}

func (s *StorefrontService) GetStore(ctx context.Context, domain string) (*response_models.StorefrontResponse, error) {
	tenant, _, err := s.resolveOpenStore(ctx, domain)
	if err != nil {
		return nil, err
	}

	brand, err := s.tenantRepo.FindBrand(ctx, tenant.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.StorefrontResponse{
		StoreName: tenant.Name,
		Domain:    domain,
	}
	if brand != nil {
		resp.StoreName = brand.StoreName
		resp.LogoURL = brand.LogoURL
		resp.PrimaryColor = brand.PrimaryColor
		resp.AccentColor = brand.AccentColor
	}
	return resp, nil
}

func (s *StorefrontService) ListProducts(ctx context.Context, domain string) ([]response_models.ProductResponse, error) {
	tenant, _, err := s.resolveOpenStore(ctx, domain)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListPublishedByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewProductResponses(products), nil
}

// RegisterCustomer creates a shopper account tied to the store behind the
// domain. Customers never touch the tenant dashboard; their token only
// works against the storefront surface.
func (s *StorefrontService) RegisterCustomer(ctx context.Context, domain string, req request_models.RegisterCustomerRequest) (*response_models.LoginResponse, error) {
	tenant, _, err := s.resolveOpenStore(ctx, domain)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.Conflictf("An account with this email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.BadRequestf("Could not process password. Please try again.")
	}

	customer := &db_models.User{
		TenantID:     &tenant.ID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         db_models.RoleCustomer,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, customer); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(customer.ID, customer.TenantID, string(customer.Role))
	if err != nil {
		return nil, utils.BadRequestf("Could not create session. Please try again.")
	}
	return &response_models.LoginResponse{
		Token: token,
		User:  response_models.NewUserResponse(customer),
	}, nil
}

func (s *StorefrontService) LoginCustomer(ctx context.Context, domain string, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	tenant, _, err := s.resolveOpenStore(ctx, domain)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// Admin credentials do not work on the shop; the account must belong
	// to this store.
	if user == nil || !user.IsActive || user.Role != db_models.RoleCustomer ||
		user.TenantID == nil || *user.TenantID != tenant.ID {
		return nil, utils.BadRequestf("Invalid email or password")
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.BadRequestf("Invalid email or password")
	}

	token, err := utils.CreateToken(user.ID, user.TenantID, string(user.Role))
	if err != nil {
		return nil, utils.BadRequestf("Could not create session. Please try again.")
	}
	return &response_models.LoginResponse{
		Token: token,
		User:  response_models.NewUserResponse(user),
	}, nil
}

func (s *StorefrontService) ListCustomerOrders(ctx context.Context, domain string, customerID uuid.UUID) ([]response_models.OrderResponse, error) {
	tenant, _, err := s.resolveOpenStore(ctx, domain)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListByCustomer(ctx, tenant.ID, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewOrderResponses(orders), nil
}

// CancelOrder lets a customer back out of an order the store has not acted
// on yet. Anything past PENDING belongs to the store owner.
func (s *StorefrontService) CancelOrder(ctx context.Context, domain string, customerID, orderID uuid.UUID) (*response_models.OrderResponse, error) {
	tenant, _, err := s.resolveOpenStore(ctx, domain)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByIDForCustomer(ctx, orderID, tenant.ID, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.NotFoundf("Order not found")
	}
	if order.Status != db_models.OrderStatusPending {
		return nil, utils.BadRequestf("Only pending orders can be cancelled")
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, db_models.OrderStatusCancelled); err != nil {
		return nil, utils.ErrDatabaseError
	}
	order.Status = db_models.OrderStatusCancelled

	resp := response_models.NewOrderResponse(order)
	return &resp, nil
}

// PlaceOrder creates a customer order against the store. The tenant's plan
// order quota is enforced here: a store over its monthly order allowance
// stops accepting checkouts until the owner upgrades.
func (s *StorefrontService) PlaceOrder(ctx context.Context, domain string, customerID *uuid.UUID, req request_models.StorefrontOrderRequest) (*response_models.OrderResponse, error) {
	tenant, sub, err := s.resolveOpenStore(ctx, domain)
	if err != nil {
		return nil, err
	}

	orderCount, err := s.orderRepo.CountByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if orderCount >= int64(sub.Plan.MaxOrders) {
		_ = s.notifications.NotifyLimitExceeded(ctx, tenant.ID)
		return nil, utils.Forbiddenf("This store cannot accept new orders right now. Please try again later.")
	}

	var (
		items      []db_models.OrderItem
		totalMinor int64
		currency   string
	)
	for _, line := range req.Items {
		product, err := s.productRepo.FindByIDForTenant(ctx, line.ProductID, tenant.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if product == nil || !product.IsPublished {
			return nil, utils.NotFoundf("Product not found")
		}
		if product.StockQty < line.Quantity {
			return nil, utils.BadRequestf("Not enough stock for %s. Only %d left.", product.Name, product.StockQty)
		}
		items = append(items, db_models.OrderItem{
			ProductID:  product.ID,
			Quantity:   line.Quantity,
			PriceMinor: product.PriceMinor,
		})
		totalMinor += product.PriceMinor * int64(line.Quantity)
		if currency == "" {
			currency = product.Currency
		}
	}

	order := &db_models.Order{
		TenantID:      tenant.ID,
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		Status:        db_models.OrderStatusPending,
		TotalMinor:    totalMinor,
		Currency:      currency,
		Items:         items,
	}
	if err := s.orderRepo.CreateWithItems(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewOrderResponse(order)
	return &resp, nil
}
