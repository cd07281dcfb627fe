package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopora/internal/models/request_models"
	"shopora/internal/services"
	"shopora/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

func (ct *CategoryController) List(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	categories, err := ct.categoryService.List(c.Request.Context(), tenantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, categories, "")
}

// Create godoc
// @Summary Create a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.CreateCategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /categories [post]
func (ct *CategoryController) Create(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := ct.categoryService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, category, "Category created successfully")
}

func (ct *CategoryController) Update(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := ct.categoryService.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, category, "Category updated successfully")
}

func (ct *CategoryController) Delete(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := ct.categoryService.Delete(c.Request.Context(), tenantID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Category deleted successfully")
}

func (ct *CategoryController) CreateSubCategory(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req request_models.CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := ct.categoryService.CreateSubCategory(c.Request.Context(), tenantID, categoryID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sub, "Subcategory created successfully")
}

func (ct *CategoryController) DeleteSubCategory(c *gin.Context) {
	tenantID, ok := tenantIDOrAbort(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("subId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subcategory id")
		return
	}

	if err := ct.categoryService.DeleteSubCategory(c.Request.Context(), tenantID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Subcategory deleted successfully")
}
