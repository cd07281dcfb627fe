package response_models

import (
	"github.com/google/uuid"

	"shopora/internal/models/db_models"
)

type SubCategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
}

type CategoryResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	SubCategories []SubCategoryResponse `json:"sub_categories"`
}

func NewSubCategoryResponse(sub *db_models.SubCategory) SubCategoryResponse {
	return SubCategoryResponse{
		ID:         sub.ID,
		CategoryID: sub.CategoryID,
		Name:       sub.Name,
	}
}

func NewCategoryResponse(category *db_models.Category) CategoryResponse {
	subs := make([]SubCategoryResponse, 0, len(category.SubCategories))
	for i := range category.SubCategories {
		subs = append(subs, NewSubCategoryResponse(&category.SubCategories[i]))
	}
	return CategoryResponse{
		ID:            category.ID,
		Name:          category.Name,
		Description:   category.Description,
		SubCategories: subs,
	}
}

type ProductResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	PriceMinor    int64      `json:"price_minor"`
	Currency      string     `json:"currency"`
	ImageURL      string     `json:"image_url,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	SubCategoryID *uuid.UUID `json:"sub_category_id,omitempty"`
	StockQty      int        `json:"stock_qty"`
	IsPublished   bool       `json:"is_published"`
}

func NewProductResponse(product *db_models.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		PriceMinor:    product.PriceMinor,
		Currency:      product.Currency,
		ImageURL:      product.ImageURL,
		CategoryID:    product.CategoryID,
		SubCategoryID: product.SubCategoryID,
		StockQty:      product.StockQty,
		IsPublished:   product.IsPublished,
	}
}

func NewProductResponses(products []db_models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
