package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionStatus is the billing state of a tenant
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionTrial    SubscriptionStatus = "TRIAL"
	SubscriptionPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
)

// Tenant is an isolated detailing business. Every record below it carries its ID.
type Tenant struct {
	ID                 string             `gorm:"primaryKey;size:36" json:"id"`
	Name               string             `gorm:"size:150;not null" json:"name"`
	Subdomain          string             `gorm:"size:63;uniqueIndex;not null" json:"subdomain"`
	ContactEmail       string             `gorm:"size:255" json:"contact_email"`
	ContactPhone       string             `gorm:"size:30" json:"contact_phone"`
	Address            string             `gorm:"size:255" json:"address"`
	City               string             `gorm:"size:100" json:"city"`
	State              string             `gorm:"size:2" json:"state"`
	ZipCode            string             `gorm:"size:10" json:"zip_code"`
	SubscriptionStatus SubscriptionStatus `gorm:"size:20;not null;default:'TRIAL'" json:"subscription_status"`
	PlanID             string             `gorm:"size:36;not null;index" json:"plan_id"`
	Plan               SubscriptionPlan   `gorm:"foreignKey:PlanID;constraint:OnDelete:RESTRICT" json:"-"`
	BillingCustomerID  string             `gorm:"size:100" json:"billing_customer_id"` // external billing provider customer
	SubscriptionEndsAt *time.Time         `json:"subscription_ends_at"`
	TrialEndsAt        *time.Time         `json:"trial_ends_at"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// TableName specifies the table name for the Tenant model
func (Tenant) TableName() string {
	return "tenants"
}

// BeforeCreate assigns a new UUID to the Tenant unless one is set
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	return nil
}
