package models

import (
	"time"

	"gorm.io/gorm"
)

// Vehicle is a client's car
type Vehicle struct {
	ID        string        `gorm:"primaryKey;size:36" json:"id"`
	Brand     string        `gorm:"size:60;not null" json:"brand"`
	Model     string        `gorm:"size:60;not null" json:"model"`
	Year      int           `gorm:"not null" json:"year"`
	Plate     string        `gorm:"size:10;not null;index" json:"plate"`
	Color     string        `gorm:"size:30" json:"color"`
	ClientID  string        `gorm:"size:36;not null;index" json:"client_id"`
	Client    ClientProfile `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	TenantID  string        `gorm:"size:36;not null;index" json:"tenant_id"`
	Tenant    Tenant        `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName specifies the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}

// BeforeCreate assigns a new UUID to the Vehicle unless one is set
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	assignID(&v.ID)
	return nil
}
