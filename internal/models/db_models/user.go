package db_models

import "github.com/google/uuid"

type UserRole string

const (
	RoleSuperAdmin  UserRole = "SUPER_ADMIN"
	RoleTenantAdmin UserRole = "TENANT_ADMIN"
	RoleCustomer    UserRole = "CUSTOMER"
)

type User struct {
	BaseModel
	TenantID     *uuid.UUID `gorm:"type:uuid;index"` // nil for SUPER_ADMIN
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	Role         UserRole `gorm:"index"`
	IsActive     bool     `gorm:"default:true"`
}
