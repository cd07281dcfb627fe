package request_models

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateSubCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CreateProductRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=200"`
	Description   string     `json:"description,omitempty"`
	PriceMinor    int64      `json:"price_minor" binding:"min=0"`
	Currency      string     `json:"currency,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	SubCategoryID *uuid.UUID `json:"sub_category_id,omitempty"`
	StockQty      int        `json:"stock_qty" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name          *string    `json:"name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PriceMinor    *int64     `json:"price_minor,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	SubCategoryID *uuid.UUID `json:"sub_category_id,omitempty"`
	IsPublished   *bool      `json:"is_published,omitempty"`
}

type AdjustInventoryRequest struct {
	Delta int `json:"delta" binding:"required"`
}
