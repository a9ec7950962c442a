package seed

import (
	"errors"
	"testing"
	"time"

	"github.com/kendall-kelly/detailing-seed/services"
	"github.com/kendall-kelly/detailing-seed/tests/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, time.October, 15, 13, 45, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func newTestLoader(t *testing.T, log *zap.Logger) (*Loader, *gorm.DB) {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	hasher, err := services.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	return NewLoader(db, hasher, log, WithClock(fixedClock)), db
}

func tableIs(table string, err error) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(err)
		}
	}
}

// failCreateOn makes every insert into table fail with err
func failCreateOn(t *testing.T, db *gorm.DB, table string, err error) {
	t.Helper()
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_create_"+table, tableIs(table, err)))
}

// failDeleteOn makes every delete from table fail with err
func failDeleteOn(t *testing.T, db *gorm.DB, table string, err error) {
	t.Helper()
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_delete_"+table, tableIs(table, err)))
}

var errInjected = errors.New("injected failure")
