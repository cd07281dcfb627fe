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

type TenantServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterTenantRequest) (*response_models.RegisterTenantResponse, error)
	GetBrand(ctx context.Context, tenantID uuid.UUID) (*response_models.BrandResponse, error)
	UpdateBrand(ctx context.Context, tenantID uuid.UUID, req request_models.UpdateBrandRequest) (*response_models.BrandResponse, error)
}

type TenantService struct {
	tenantRepo repositories.ITenantRepository
	userRepo   repositories.IUserRepository
}

func NewTenantService(
	tenantRepo repositories.ITenantRepository,
	userRepo repositories.IUserRepository,
) TenantServiceInterface {
	return &TenantService{tenantRepo: tenantRepo, userRepo: userRepo}
}

// Register creates the store and its first admin user together, then signs
// the admin in. No subscription exists yet; the new tenant must select a
// plan before it can touch the catalog.
func (s *TenantService) Register(ctx context.Context, req request_models.RegisterTenantRequest) (*response_models.RegisterTenantResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.AdminEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.Conflictf("An account with this email already exists")
	}

	if req.Domain != nil && *req.Domain != "" {
		taken, err := s.tenantRepo.FindByDomain(ctx, *req.Domain)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if taken != nil {
			return nil, utils.Conflictf("This domain is already taken")
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.BadRequestf("Could not process password. Please try again.")
	}

	tenant := &db_models.Tenant{
		Name:     req.StoreName,
		Domain:   req.Domain,
		IsActive: true,
	}
	admin := &db_models.User{
		Name:         req.AdminName,
		Email:        req.AdminEmail,
		Phone:        req.AdminPhone,
		PasswordHash: hash,
		Role:         db_models.RoleTenantAdmin,
		IsActive:     true,
	}
	if err := s.tenantRepo.CreateWithAdmin(ctx, tenant, admin); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(admin.ID, admin.TenantID, string(admin.Role))
	if err != nil {
		return nil, utils.BadRequestf("Could not create session. Please try again.")
	}

	return &response_models.RegisterTenantResponse{
		Tenant: response_models.NewTenantResponse(tenant),
		Admin:  response_models.NewUserResponse(admin),
		Token:  token,
	}, nil
}

func (s *TenantService) GetBrand(ctx context.Context, tenantID uuid.UUID) (*response_models.BrandResponse, error) {
	brand, err := s.tenantRepo.FindBrand(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if brand == nil {
		tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if tenant == nil {
			return nil, utils.NotFoundf("Store not found")
		}
		// not persisted until the first update
		return &response_models.BrandResponse{
			TenantID:  tenantID,
			StoreName: tenant.Name,
		}, nil
	}
	resp := response_models.NewBrandResponse(brand)
	return &resp, nil
}

func (s *TenantService) UpdateBrand(ctx context.Context, tenantID uuid.UUID, req request_models.UpdateBrandRequest) (*response_models.BrandResponse, error) {
	brand, err := s.tenantRepo.FindBrand(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if brand == nil {
		tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if tenant == nil {
			return nil, utils.NotFoundf("Store not found")
		}
		brand = &db_models.TenantBrand{
			TenantID:  tenantID,
			StoreName: tenant.Name,
		}
	}

	if req.StoreName != nil {
		brand.StoreName = *req.StoreName
	}
	if req.LogoURL != nil {
		brand.LogoURL = *req.LogoURL
	}
	if req.PrimaryColor != nil {
		brand.PrimaryColor = *req.PrimaryColor
	}
	if req.AccentColor != nil {
		brand.AccentColor = *req.AccentColor
	}

	if err := s.tenantRepo.SaveBrand(ctx, brand); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewBrandResponse(brand)
	return &resp, nil
}
