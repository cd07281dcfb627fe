package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type RegisterTenantRequest struct {
	StoreName  string  `json:"store_name" binding:"required,min=3,max=100"`
	Domain     *string `json:"domain,omitempty"`
	AdminName  string  `json:"admin_name" binding:"required,min=3,max=50"`
	AdminEmail string  `json:"admin_email" binding:"required,email"`
	AdminPhone string  `json:"admin_phone,omitempty"`
	Password   string  `json:"password" binding:"required,min=6"`
}
