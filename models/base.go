package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID returns a fresh string primary key. String UUIDs keep the schema
// portable across Postgres, MySQL and sqlite.
func newID() string {
	return uuid.NewString()
}

// assignID fills an empty primary key before insert.
func assignID(id *string) {
	if *id == "" {
		*id = newID()
	}
}

// AllModels lists every seeded model in dependency order (parents first).
func AllModels() []interface{} {
	return []interface{}{
		&SubscriptionPlan{},
		&Tenant{},
		&AuthAccount{},
		&EmployeeProfile{},
		&ClientProfile{},
		&Vehicle{},
		&Service{},
		&Booking{},
		&BookingService{},
	}
}

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
