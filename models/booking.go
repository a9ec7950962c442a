package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking is a client's appointment for one vehicle
type Booking struct {
	ID                  string        `gorm:"primaryKey;size:36" json:"id"`
	Date                time.Time     `gorm:"not null;index" json:"date"`
	Time                string        `gorm:"size:5;not null" json:"time"` // HH:MM
	Status              string        `gorm:"size:20;not null;default:'pending'" json:"status"`
	SpecialInstructions *string       `gorm:"type:text" json:"special_instructions"`
	ClientID            string        `gorm:"size:36;not null;index" json:"client_id"`
	Client              ClientProfile `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	VehicleID           string        `gorm:"size:36;not null;index" json:"vehicle_id"`
	Vehicle             Vehicle       `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"-"`
	TenantID            string        `gorm:"size:36;not null;index" json:"tenant_id"`
	Tenant              Tenant        `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate assigns a new UUID to the Booking unless one is set
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	assignID(&b.ID)
	return nil
}

// BookingService records that a service was requested as part of a booking
type BookingService struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	BookingID string    `gorm:"size:36;not null;uniqueIndex:idx_booking_service" json:"booking_id"`
	Booking   Booking   `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`
	ServiceID string    `gorm:"size:36;not null;uniqueIndex:idx_booking_service" json:"service_id"`
	Service   Service   `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the BookingService model
func (BookingService) TableName() string {
	return "booking_services"
}

// BeforeCreate assigns a new UUID to the BookingService unless one is set
func (bs *BookingService) BeforeCreate(tx *gorm.DB) error {
	assignID(&bs.ID)
	return nil
}
