package models

import (
	"time"

	"gorm.io/gorm"
)

// Service is a detailing job a tenant offers
type Service struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int       `gorm:"not null" json:"duration"` // minutes
	TenantID    string    `gorm:"size:36;not null;index" json:"tenant_id"`
	Tenant      Tenant    `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// BeforeCreate assigns a new UUID to the Service unless one is set
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}
