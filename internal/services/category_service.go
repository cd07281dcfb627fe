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

type CategoryServiceInterface interface {
	List(ctx context.Context, tenantID uuid.UUID) ([]response_models.CategoryResponse, error)
	Create(ctx context.Context, tenantID uuid.UUID, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req request_models.UpdateCategoryRequest) (*response_models.CategoryResponse, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	CreateSubCategory(ctx context.Context, tenantID, categoryID uuid.UUID, req request_models.CreateSubCategoryRequest) (*response_models.SubCategoryResponse, error)
	DeleteSubCategory(ctx context.Context, tenantID, id uuid.UUID) error
}

type CategoryService struct {
	categoryRepo repositories.ICategoryRepository
	limits       ILimitChecker
}

func NewCategoryService(
	categoryRepo repositories.ICategoryRepository,
	limits ILimitChecker,
) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo, limits: limits}
}

func (s *CategoryService) List(ctx context.Context, tenantID uuid.UUID) ([]response_models.CategoryResponse, error) {
	if err := s.limits.CanView(ctx, tenantID); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, response_models.NewCategoryResponse(&categories[i]))
	}
	return out, nil
}

func (s *CategoryService) Create(ctx context.Context, tenantID uuid.UUID, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error) {
	if err := s.limits.CanCreate(ctx, tenantID, CategoryTarget{}); err != nil {
		return nil, err
	}

	category := &db_models.Category{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryService) Update(ctx context.Context, tenantID, id uuid.UUID, req request_models.UpdateCategoryRequest) (*response_models.CategoryResponse, error) {
	if err := s.limits.CanUpdate(ctx, tenantID); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByIDForTenant(ctx, id, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.NotFoundf("Category not found")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := s.limits.CanDelete(ctx, tenantID); err != nil {
		return err
	}

	category, err := s.categoryRepo.FindByIDForTenant(ctx, id, tenantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.NotFoundf("Category not found")
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CategoryService) CreateSubCategory(ctx context.Context, tenantID, categoryID uuid.UUID, req request_models.CreateSubCategoryRequest) (*response_models.SubCategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForTenant(ctx, categoryID, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.NotFoundf("Category not found")
	}

	if err := s.limits.CanCreate(ctx, tenantID, SubCategoryTarget{CategoryID: categoryID}); err != nil {
		return nil, err
	}

	sub := &db_models.SubCategory{
		TenantID:   tenantID,
		CategoryID: categoryID,
		Name:       req.Name,
	}
	if err := s.categoryRepo.CreateSubCategory(ctx, sub); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewSubCategoryResponse(sub)
	return &resp, nil
}

func (s *CategoryService) DeleteSubCategory(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := s.limits.CanDelete(ctx, tenantID); err != nil {
		return err
	}

	sub, err := s.categoryRepo.FindSubCategoryForTenant(ctx, id, tenantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.NotFoundf("Subcategory not found")
	}
	if err := s.categoryRepo.DeleteSubCategory(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
