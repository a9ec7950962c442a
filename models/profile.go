package models

import (
	"time"

	"gorm.io/gorm"
)

// EmployeeProfile is attached one-to-one to TENANT_ADMIN and EMPLOYEE accounts
type EmployeeProfile struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	AccountID string      `gorm:"size:36;uniqueIndex;not null" json:"account_id"`
	Account   AuthAccount `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	TenantID  string      `gorm:"size:36;not null;index" json:"tenant_id"`
	Tenant    Tenant      `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string      `gorm:"size:150;not null" json:"name"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TableName specifies the table name for the EmployeeProfile model
func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}

// BeforeCreate assigns a new UUID to the EmployeeProfile unless one is set
func (p *EmployeeProfile) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

// ClientProfile is attached one-to-one to CLIENT accounts and must belong to a tenant
type ClientProfile struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	AccountID string      `gorm:"size:36;uniqueIndex;not null" json:"account_id"`
	Account   AuthAccount `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	TenantID  string      `gorm:"size:36;not null;index" json:"tenant_id"`
	Tenant    Tenant      `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string      `gorm:"size:150;not null" json:"name"`
	WhatsApp  string      `gorm:"column:whatsapp;size:20" json:"whatsapp"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TableName specifies the table name for the ClientProfile model
func (ClientProfile) TableName() string {
	return "client_profiles"
}

// BeforeCreate assigns a new UUID to the ClientProfile unless one is set
func (p *ClientProfile) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
