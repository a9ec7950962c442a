package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/detailing-seed/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (l *Loader) upsertAccounts(ctx context.Context, seeds []AccountSeed, res *Result) error {
	for _, s := range seeds {
		account, err := l.UpsertAccount(ctx, s, res.Tenants[s.Tenant])
		if err != nil {
			return err
		}
		res.Accounts[s.Email] = account.ID
		l.log.Debug("account ready",
			zap.String("email", s.Email),
			zap.String("role", string(s.Role)),
			zap.String("id", account.ID),
		)
	}
	return nil
}

// UpsertAccount creates the account for s unless one with the same email
// exists. An existing account keeps its ID, password hash and role; only its
// tenant is re-bound to tenantID. A stored role that differs from s.Role is
// rejected with ErrRoleMismatch and nothing is changed. The role profile is
// created or refreshed in the same transaction, and a profile of the other
// kind is removed.
func (l *Loader) UpsertAccount(ctx context.Context, s AccountSeed, tenantID string) (models.AuthAccount, error) {
	hash, err := l.hasher.Hash(s.Password)
	if err != nil {
		return models.AuthAccount{}, fail(PhaseAccounts, s.Email, err)
	}

	var stored models.AuthAccount
	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account := models.AuthAccount{
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
			TenantID:     &tenantID,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"tenant_id", "updated_at"}),
		}).Omit(clause.Associations).Create(&account).Error; err != nil {
			return fmt.Errorf("upsert account: %w", err)
		}

		// account.ID is the freshly generated one even when the row already existed
		if err := tx.Where("email = ?", s.Email).First(&stored).Error; err != nil {
			return fmt.Errorf("reload account: %w", err)
		}
		if stored.Role != s.Role {
			return fmt.Errorf("%w: stored %s, wanted %s", ErrRoleMismatch, stored.Role, s.Role)
		}

		return ensureProfile(tx, stored.ID, tenantID, s.Profile)
	})
	if err != nil {
		return models.AuthAccount{}, fail(PhaseAccounts, s.Email, err)
	}
	return stored, nil
}

func ensureProfile(tx *gorm.DB, accountID, tenantID string, profile ProfileSeed) error {
	switch p := profile.(type) {
	case EmployeeSeed:
		if err := tx.Where("account_id = ?", accountID).Delete(&models.ClientProfile{}).Error; err != nil {
			return fmt.Errorf("remove client profile: %w", err)
		}
		employee := models.EmployeeProfile{AccountID: accountID, TenantID: tenantID, Name: p.Name}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"tenant_id", "name", "updated_at"}),
		}).Omit(clause.Associations).Create(&employee).Error; err != nil {
			return fmt.Errorf("upsert employee profile: %w", err)
		}
	case ClientSeed:
		if err := tx.Where("account_id = ?", accountID).Delete(&models.EmployeeProfile{}).Error; err != nil {
			return fmt.Errorf("remove employee profile: %w", err)
		}
		client := models.ClientProfile{AccountID: accountID, TenantID: tenantID, Name: p.Name, WhatsApp: p.WhatsApp}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"tenant_id", "name", "whatsapp", "updated_at"}),
		}).Omit(clause.Associations).Create(&client).Error; err != nil {
			return fmt.Errorf("upsert client profile: %w", err)
		}
	default:
		return fmt.Errorf("unsupported profile %T", profile)
	}
	return nil
}

func (l *Loader) lookupClientProfiles(ctx context.Context, seeds []AccountSeed, res *Result) error {
	for _, s := range seeds {
		if _, ok := s.Profile.(ClientSeed); !ok {
			continue
		}
		profile, err := l.ClientProfile(ctx, res.Accounts[s.Email])
		if err != nil {
			return fail(PhaseProfiles, s.Email, err)
		}
		res.ClientProfiles[s.Email] = profile.ID
	}
	return nil
}

// ClientProfile fetches the client profile attached to accountID
func (l *Loader) ClientProfile(ctx context.Context, accountID string) (models.ClientProfile, error) {
	var profile models.ClientProfile
	err := l.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profile, ErrProfileNotFound
	}
	return profile, err
}
