package seed

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/detailing-seed/models"
	"gorm.io/gorm"
)

type tabler interface {
	TableName() string
}

// tenantData lists the tenant-scoped tables, children before parents.
var tenantData = []tabler{
	&models.BookingService{},
	&models.Booking{},
	&models.Vehicle{},
	&models.Service{},
	&models.ClientProfile{},
	&models.EmployeeProfile{},
}

// Reset removes every tenant and plan together with all tenant-scoped rows,
// in one transaction. Accounts survive with their tenant cleared so that the
// email upsert keeps their IDs stable across runs.
func (l *Loader) Reset(ctx context.Context) error {
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		for _, m := range tenantData {
			if err := all.Delete(m).Error; err != nil {
				return fmt.Errorf("delete %s: %w", m.TableName(), err)
			}
		}

		if err := tx.Model(&models.AuthAccount{}).
			Where("tenant_id IS NOT NULL").
			Update("tenant_id", nil).Error; err != nil {
			return fmt.Errorf("detach %s: %w", models.AuthAccount{}.TableName(), err)
		}

		if err := all.Delete(&models.Tenant{}).Error; err != nil {
			return fmt.Errorf("delete %s: %w", models.Tenant{}.TableName(), err)
		}
		if err := all.Delete(&models.SubscriptionPlan{}).Error; err != nil {
			return fmt.Errorf("delete %s: %w", models.SubscriptionPlan{}.TableName(), err)
		}
		return nil
	})
	if err != nil {
		return fail(PhaseReset, "", err)
	}
	return nil
}
