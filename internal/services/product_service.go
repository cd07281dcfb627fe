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

type ProductServiceInterface interface {
	List(ctx context.Context, tenantID uuid.UUID) ([]response_models.ProductResponse, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*response_models.ProductResponse, error)
	Create(ctx context.Context, tenantID uuid.UUID, req request_models.CreateProductRequest) (*response_models.ProductResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req request_models.UpdateProductRequest) (*response_models.ProductResponse, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	AdjustInventory(ctx context.Context, tenantID, id uuid.UUID, delta int) (*response_models.ProductResponse, error)
}

type ProductService struct {
	productRepo  repositories.IProductRepository
	categoryRepo repositories.ICategoryRepository
	limits       ILimitChecker
}

func NewProductService(
	productRepo repositories.IProductRepository,
	categoryRepo repositories.ICategoryRepository,
	limits ILimitChecker,
) ProductServiceInterface {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		limits:       limits,
	}
}

func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID) ([]response_models.ProductResponse, error) {
	if err := s.limits.CanView(ctx, tenantID); err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewProductResponses(products), nil
}

func (s *ProductService) Get(ctx context.Context, tenantID, id uuid.UUID) (*response_models.ProductResponse, error) {
	if err := s.limits.CanView(ctx, tenantID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByIDForTenant(ctx, id, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.NotFoundf("Product not found")
	}
	resp := response_models.NewProductResponse(product)
	return &resp, nil
}

func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req request_models.CreateProductRequest) (*response_models.ProductResponse, error) {
	if err := s.limits.CanCreate(ctx, tenantID, ProductTarget{}); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindByIDForTenant(ctx, *req.CategoryID, tenantID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, utils.NotFoundf("Category not found")
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "BDT"
	}
	product := &db_models.Product{
		TenantID:      tenantID,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Name:          req.Name,
		Description:   req.Description,
		PriceMinor:    req.PriceMinor,
		Currency:      currency,
		ImageURL:      req.ImageURL,
		StockQty:      req.StockQty,
		IsPublished:   true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewProductResponse(product)
	return &resp, nil
}

func (s *ProductService) Update(ctx context.Context, tenantID, id uuid.UUID, req request_models.UpdateProductRequest) (*response_models.ProductResponse, error) {
	if err := s.limits.CanUpdate(ctx, tenantID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByIDForTenant(ctx, id, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.NotFoundf("Product not found")
	}

	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindByIDForTenant(ctx, *req.CategoryID, tenantID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, utils.NotFoundf("Category not found")
		}
		product.CategoryID = req.CategoryID
	}
	if req.SubCategoryID != nil {
		product.SubCategoryID = req.SubCategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.PriceMinor != nil {
		product.PriceMinor = *req.PriceMinor
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsPublished != nil {
		product.IsPublished = *req.IsPublished
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewProductResponse(product)
	return &resp, nil
}

func (s *ProductService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := s.limits.CanDelete(ctx, tenantID); err != nil {
		return err
	}

	product, err := s.productRepo.FindByIDForTenant(ctx, id, tenantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil {
		return utils.NotFoundf("Product not found")
	}
	return s.productRepo.Delete(ctx, id)
}

// AdjustInventory applies a signed delta to stock. Updating is gated like
// any other write, and stock never goes below zero.
func (s *ProductService) AdjustInventory(ctx context.Context, tenantID, id uuid.UUID, delta int) (*response_models.ProductResponse, error) {
	if err := s.limits.CanUpdate(ctx, tenantID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByIDForTenant(ctx, id, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.NotFoundf("Product not found")
	}
	if product.StockQty+delta < 0 {
		return nil, utils.BadRequestf("Cannot reduce stock below zero. Current stock is %d.", product.StockQty)
	}

	if err := s.productRepo.AdjustStock(ctx, id, delta); err != nil {
		return nil, utils.ErrDatabaseError
	}
	product.StockQty += delta
	resp := response_models.NewProductResponse(product)
	return &resp, nil
}
