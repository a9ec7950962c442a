package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Billing cycles accepted for a subscription plan
const (
	BillingCycleMonthly = "monthly"
	BillingCycleYearly  = "yearly"
)

// SubscriptionPlan is a priced tier that bounds what a tenant may use
type SubscriptionPlan struct {
	ID           string                      `gorm:"primaryKey;size:36" json:"id"`
	Name         string                      `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description  string                      `gorm:"type:text" json:"description"`
	Price        float64                     `gorm:"type:decimal(10,2);not null" json:"price"`
	BillingCycle string                      `gorm:"size:20;not null;default:'monthly'" json:"billing_cycle"` // monthly, yearly
	Features     datatypes.JSONSlice[string] `json:"features"`
	MaxEmployees int                         `gorm:"not null" json:"max_employees"`
	MaxClients   *int                        `json:"max_clients"` // nil means unlimited
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// TableName specifies the table name for the SubscriptionPlan model
func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

// BeforeCreate assigns a new UUID to the SubscriptionPlan unless one is set
func (p *SubscriptionPlan) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

// Unlimited reports whether the plan places no cap on clients
func (p SubscriptionPlan) Unlimited() bool {
	return p.MaxClients == nil
}
