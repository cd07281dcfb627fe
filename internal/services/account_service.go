package services

import (
	"context"

	"github.com/google/uuid"

	"shopora/internal/models/db_models"
	"shopora/internal/models/request_models"
	"shopora/internal/models/response_models"
	"shopora/internal/repositories"
	"shopora/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	ListCustomers(ctx context.Context, tenantID uuid.UUID) ([]response_models.UserResponse, error)
	UpdateCustomerStatus(ctx context.Context, tenantID, userID uuid.UUID, isActive bool) (*response_models.UserResponse, error)
}

type AccountService struct {
	userRepo repositories.IUserRepository
}

func NewAccountService(userRepo repositories.IUserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || !user.IsActive {
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

func (s *AccountService) ListCustomers(ctx context.Context, tenantID uuid.UUID) ([]response_models.UserResponse, error) {
	customers, err := s.userRepo.ListCustomersByTenant(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.UserResponse, 0, len(customers))
	for i := range customers {
		out = append(out, response_models.NewUserResponse(&customers[i]))
	}
	return out, nil
}

// UpdateCustomerStatus lets a store owner disable a shopper account. A
// disabled customer can no longer sign in; existing orders are untouched.
func (s *AccountService) UpdateCustomerStatus(ctx context.Context, tenantID, userID uuid.UUID, isActive bool) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || user.Role != db_models.RoleCustomer ||
		user.TenantID == nil || *user.TenantID != tenantID {
		return nil, utils.NotFoundf("Customer not found")
	}

	user.IsActive = isActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewUserResponse(user)
	return &resp, nil
}
