package request_models

type UpdateBrandRequest struct {
	StoreName    *string `json:"store_name,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
	PrimaryColor *string `json:"primary_color,omitempty"`
	AccentColor  *string `json:"accent_color,omitempty"`
}
