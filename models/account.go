package models

import (
	"time"

	"gorm.io/gorm"
)

// Role decides which profile an account carries
type Role string

const (
	RoleTenantAdmin Role = "TENANT_ADMIN"
	RoleEmployee    Role = "EMPLOYEE"
	RoleClient      Role = "CLIENT"
)

// UsesClientProfile reports whether accounts with this role get a ClientProfile.
// Every other role gets an EmployeeProfile.
func (r Role) UsesClientProfile() bool {
	return r == RoleClient
}

// AuthAccount is a login identity scoped to a tenant
type AuthAccount struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null" json:"role"`   // TENANT_ADMIN, EMPLOYEE or CLIENT
	TenantID     *string   `gorm:"size:36;index" json:"tenant_id"` // cleared when the tenant is removed
	Tenant       *Tenant   `gorm:"foreignKey:TenantID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the AuthAccount model
func (AuthAccount) TableName() string {
	return "auth_accounts"
}

// BeforeCreate assigns a new UUID to the AuthAccount unless one is set
func (a *AuthAccount) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}
