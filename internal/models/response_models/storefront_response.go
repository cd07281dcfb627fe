package response_models

type StorefrontResponse struct {
	StoreName    string `json:"store_name"`
	Domain       string `json:"domain"`
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
	AccentColor  string `json:"accent_color,omitempty"`
}
