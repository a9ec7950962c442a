package seed

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/detailing-seed/models"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

// Counts is the number of rows in each seeded table
type Counts struct {
	Plans            int64
	Tenants          int64
	Accounts         int64
	EmployeeProfiles int64
	ClientProfiles   int64
	Vehicles         int64
	Services         int64
	Bookings         int64
	BookingServices  int64
}

// CountRows counts every seeded table
func CountRows(ctx context.Context, db *gorm.DB) (Counts, error) {
	var c Counts
	targets := []struct {
		model tabler
		dest  *int64
	}{
		{&models.SubscriptionPlan{}, &c.Plans},
		{&models.Tenant{}, &c.Tenants},
		{&models.AuthAccount{}, &c.Accounts},
		{&models.EmployeeProfile{}, &c.EmployeeProfiles},
		{&models.ClientProfile{}, &c.ClientProfiles},
		{&models.Vehicle{}, &c.Vehicles},
		{&models.Service{}, &c.Services},
		{&models.Booking{}, &c.Bookings},
		{&models.BookingService{}, &c.BookingServices},
	}

	for _, t := range targets {
		if err := db.WithContext(ctx).Model(t.model).Count(t.dest).Error; err != nil {
			return c, fmt.Errorf("count %s: %w", t.model.TableName(), err)
		}
	}
	return c, nil
}

// MarshalLogObject lets Counts be logged with zap.Object
func (c Counts) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("plans", c.Plans)
	enc.AddInt64("tenants", c.Tenants)
	enc.AddInt64("accounts", c.Accounts)
	enc.AddInt64("employee_profiles", c.EmployeeProfiles)
	enc.AddInt64("client_profiles", c.ClientProfiles)
	enc.AddInt64("vehicles", c.Vehicles)
	enc.AddInt64("services", c.Services)
	enc.AddInt64("bookings", c.Bookings)
	enc.AddInt64("booking_services", c.BookingServices)
	return nil
}
