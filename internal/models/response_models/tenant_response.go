package response_models

import (
	"github.com/google/uuid"

	"shopora/internal/models/db_models"
)

type TenantResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Domain   *string   `json:"domain,omitempty"`
	IsActive bool      `json:"is_active"`
}

func NewTenantResponse(tenant *db_models.Tenant) TenantResponse {
	return TenantResponse{
		ID:       tenant.ID,
		Name:     tenant.Name,
		Domain:   tenant.Domain,
		IsActive: tenant.IsActive,
	}
}

type RegisterTenantResponse struct {
	Tenant TenantResponse `json:"tenant"`
	Admin  UserResponse   `json:"admin"`
	Token  string         `json:"token"`
}

type BrandResponse struct {
	TenantID     uuid.UUID `json:"tenant_id"`
	StoreName    string    `json:"store_name"`
	LogoURL      string    `json:"logo_url,omitempty"`
	PrimaryColor string    `json:"primary_color,omitempty"`
	AccentColor  string    `json:"accent_color,omitempty"`
}

func NewBrandResponse(brand *db_models.TenantBrand) BrandResponse {
	return BrandResponse{
		TenantID:     brand.TenantID,
		StoreName:    brand.StoreName,
		LogoURL:      brand.LogoURL,
		PrimaryColor: brand.PrimaryColor,
		AccentColor:  brand.AccentColor,
	}
}
