package integration

import (
	"context"
	"os"
	"testing"

	"github.com/kendall-kelly/detailing-seed/config"
	"github.com/kendall-kelly/detailing-seed/models"
	"github.com/kendall-kelly/detailing-seed/seed"
	"github.com/kendall-kelly/detailing-seed/services"
	"github.com/kendall-kelly/detailing-seed/tests/testutil"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedIntegrationTestSuite runs the full loader against a real database
type SeedIntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	loader *seed.Loader
	// open returns a fresh, migrated database for each test
	open func(t *testing.T) *gorm.DB
}

// SetupTest runs before each test
func (suite *SeedIntegrationTestSuite) SetupTest() {
	suite.db = suite.open(suite.T())

	hasher, err := services.NewBcryptHasher(bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.loader = seed.NewLoader(suite.db, hasher, nil)
}

func (suite *SeedIntegrationTestSuite) counts() seed.Counts {
	counts, err := seed.CountRows(context.Background(), suite.db)
	suite.Require().NoError(err)
	return counts
}

// TestEndToEnd seeds an empty database and re-seeds it
func (suite *SeedIntegrationTestSuite) TestEndToEnd() {
	ctx := context.Background()

	first, err := suite.loader.Run(ctx, seed.DefaultCatalog())
	suite.Require().NoError(err)

	counts := suite.counts()
	suite.Equal(int64(3), counts.Plans)
	suite.Equal(int64(3), counts.Tenants)
	suite.Equal(int64(7), counts.Accounts)
	suite.Equal(int64(3), counts.Vehicles)
	suite.Equal(int64(4), counts.Services)
	suite.Equal(int64(5), counts.Bookings)
	suite.Equal(int64(5), counts.BookingServices)

	second, err := suite.loader.Run(ctx, seed.DefaultCatalog())
	suite.Require().NoError(err)

	suite.Equal(counts, suite.counts())
	suite.Equal(first.Accounts, second.Accounts)
}

// TestResetLeavesNoTenantData checks the destructive reset on its own
func (suite *SeedIntegrationTestSuite) TestResetLeavesNoTenantData() {
	ctx := context.Background()

	_, err := suite.loader.Run(ctx, seed.DefaultCatalog())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.loader.Reset(ctx))

	var tenants, plans int64
	suite.NoError(suite.db.Model(&models.Tenant{}).Count(&tenants).Error)
	suite.NoError(suite.db.Model(&models.SubscriptionPlan{}).Count(&plans).Error)
	suite.Zero(tenants)
	suite.Zero(plans)

	counts := suite.counts()
	suite.Zero(counts.Vehicles)
	suite.Zero(counts.Services)
	suite.Zero(counts.Bookings)
	suite.Zero(counts.BookingServices)
	suite.Zero(counts.ClientProfiles)
	suite.Zero(counts.EmployeeProfiles)
}

// TestClientLogin checks a seeded client can be authenticated with the sample password
func (suite *SeedIntegrationTestSuite) TestClientLogin() {
	ctx := context.Background()

	res, err := suite.loader.Run(ctx, seed.DefaultCatalog())
	suite.Require().NoError(err)

	var account models.AuthAccount
	suite.Require().NoError(suite.db.Where("email = ?", "joao@exemplo.com").First(&account).Error)
	suite.Equal(models.RoleClient, account.Role)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("Senha123")))

	profile, err := suite.loader.ClientProfile(ctx, account.ID)
	suite.Require().NoError(err)
	suite.Equal("João Silva", profile.Name)
	suite.Equal(res.Tenants["teste"], profile.TenantID)

	var vehicle models.Vehicle
	suite.Require().NoError(suite.db.Where("client_id = ?", profile.ID).First(&vehicle).Error)
	suite.Equal("ABC1234", vehicle.Plate)
}

// TestSeedIntegrationSQLite runs the suite on in-memory sqlite
func TestSeedIntegrationSQLite(t *testing.T) {
	suite.Run(t, &SeedIntegrationTestSuite{open: testutil.NewSQLiteDB})
}

// TestSeedIntegrationPostgres runs the suite on the database named by
// TEST_DATABASE_URL. The database is wiped, so a URL without GO_ENV=test
// fails instead of skipping.
func TestSeedIntegrationPostgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("Skipping test: TEST_DATABASE_URL not set")
	}
	testutil.RequireTestEnvironment(t)
	t.Logf("Using %s", testutil.MaskDatabaseURL(url))

	open := func(t *testing.T) *gorm.DB {
		t.Helper()
		db, err := config.ConnectDatabase(&config.Config{
			DatabaseURL:  url,
			DatabaseType: config.DatabasePostgres,
			LogLevel:     "error",
		})
		if err != nil {
			t.Fatalf("Failed to connect to test database: %v", err)
		}
		t.Cleanup(func() { config.CloseDatabase(db) })

		if err := models.Migrate(db); err != nil {
			t.Fatalf("Failed to migrate test database: %v", err)
		}
		return db
	}

	suite.Run(t, &SeedIntegrationTestSuite{open: open})
}
