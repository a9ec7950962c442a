package seed

import (
	"context"
	"strconv"
	"time"

	"github.com/kendall-kelly/detailing-seed/models"
	"github.com/kendall-kelly/detailing-seed/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// SubscriptionPeriod is how long ACTIVE tenants are paid up from the run time
	SubscriptionPeriod = 30 * 24 * time.Hour
	// TrialPeriod is how long TRIAL tenants stay in trial from the run time
	TrialPeriod = 15 * 24 * time.Hour
)

// Loader writes a Catalog into the datastore in dependency order:
// plans, tenants, accounts, vehicles, services, bookings.
type Loader struct {
	db     *gorm.DB
	hasher services.PasswordHasher
	log    *zap.Logger
	now    func() time.Time
}

// Option configures a Loader
type Option func(*Loader)

// WithClock replaces time.Now as the source of the run time
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.now = now
	}
}

// NewLoader creates a Loader over db. A nil logger disables progress output.
func NewLoader(db *gorm.DB, hasher services.PasswordHasher, log *zap.Logger, opts ...Option) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{
		db:     db,
		hasher: hasher,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Result holds the IDs generated by a run, keyed by natural key
type Result struct {
	Plans           map[string]string // plan name
	Tenants         map[string]string // subdomain
	Accounts        map[string]string // email
	ClientProfiles  map[string]string // client account email
	Vehicles        map[string]string // plate
	Services        map[string]string // "subdomain/title"
	Bookings        []string          // catalog order
	BookingServices []string
}

func newResult() *Result {
	return &Result{
		Plans:          make(map[string]string),
		Tenants:        make(map[string]string),
		Accounts:       make(map[string]string),
		ClientProfiles: make(map[string]string),
		Vehicles:       make(map[string]string),
		Services:       make(map[string]string),
	}
}

// ServiceID returns the ID of the service with title in tenant
func (r *Result) ServiceID(tenant, title string) string {
	return r.Services[serviceKey(tenant, title)]
}

// Run validates the catalog, resets tenant data and writes the catalog.
// Only the reset is atomic: a failure in a later phase leaves the records
// written so far in place, and the returned *SeedError names the phase.
func (l *Loader) Run(ctx context.Context, catalog Catalog) (*Result, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fail(PhaseValidate, "", err)
	}

	now := l.now()
	res := newResult()

	l.log.Info("clearing existing data")
	if err := l.Reset(ctx); err != nil {
		return nil, err
	}

	l.log.Info("creating plans", zap.Int("count", len(catalog.Plans)))
	if err := l.createPlans(ctx, catalog.Plans, res); err != nil {
		return nil, err
	}

	l.log.Info("creating tenants", zap.Int("count", len(catalog.Tenants)))
	if err := l.createTenants(ctx, catalog.Tenants, now, res); err != nil {
		return nil, err
	}

	l.log.Info("creating accounts", zap.Int("count", len(catalog.Accounts)))
	if err := l.upsertAccounts(ctx, catalog.Accounts, res); err != nil {
		return nil, err
	}
	if err := l.lookupClientProfiles(ctx, catalog.Accounts, res); err != nil {
		return nil, err
	}

	l.log.Info("creating vehicles", zap.Int("count", len(catalog.Vehicles)))
	if err := l.createVehicles(ctx, catalog.Vehicles, res); err != nil {
		return nil, err
	}

	l.log.Info("creating services", zap.Int("count", len(catalog.Services)))
	if err := l.createServices(ctx, catalog.Services, res); err != nil {
		return nil, err
	}

	l.log.Info("creating bookings", zap.Int("count", len(catalog.Bookings)))
	if err := l.createBookings(ctx, catalog.Bookings, now, res); err != nil {
		return nil, err
	}

	l.log.Info("seed completed",
		zap.Int("plans", len(res.Plans)),
		zap.Int("tenants", len(res.Tenants)),
		zap.Int("accounts", len(res.Accounts)),
		zap.Int("vehicles", len(res.Vehicles)),
		zap.Int("services", len(res.Services)),
		zap.Int("bookings", len(res.Bookings)),
		zap.Int("booking_services", len(res.BookingServices)),
	)
	return res, nil
}

func (l *Loader) create(ctx context.Context, value interface{}) error {
	return l.db.WithContext(ctx).Omit(clause.Associations).Create(value).Error
}

func (l *Loader) createPlans(ctx context.Context, seeds []PlanSeed, res *Result) error {
	for _, s := range seeds {
		plan := models.SubscriptionPlan{
			Name:         s.Name,
			Description:  s.Description,
			Price:        s.Price,
			BillingCycle: s.BillingCycle,
			Features:     append([]string(nil), s.Features...),
			MaxEmployees: s.MaxEmployees,
			MaxClients:   s.MaxClients,
		}
		if err := l.create(ctx, &plan); err != nil {
			return fail(PhasePlans, s.Name, err)
		}
		res.Plans[s.Name] = plan.ID
		l.log.Debug("plan created", zap.String("name", s.Name), zap.String("id", plan.ID))
	}
	return nil
}

func (l *Loader) createTenants(ctx context.Context, seeds []TenantSeed, now time.Time, res *Result) error {
	for _, s := range seeds {
		tenant := models.Tenant{
			Name:               s.Name,
			Subdomain:          s.Subdomain,
			ContactEmail:       s.ContactEmail,
			ContactPhone:       s.ContactPhone,
			Address:            s.Address,
			City:               s.City,
			State:              s.State,
			ZipCode:            s.ZipCode,
			SubscriptionStatus: s.Status,
			PlanID:             res.Plans[s.Plan],
			BillingCustomerID:  s.BillingCustomerID,
		}
		switch s.Status {
		case models.SubscriptionActive:
			ends := now.Add(SubscriptionPeriod)
			tenant.SubscriptionEndsAt = &ends
		case models.SubscriptionTrial:
			ends := now.Add(TrialPeriod)
			tenant.TrialEndsAt = &ends
		}
		if err := l.create(ctx, &tenant); err != nil {
			return fail(PhaseTenants, s.Subdomain, err)
		}
		res.Tenants[s.Subdomain] = tenant.ID
		l.log.Debug("tenant created", zap.String("subdomain", s.Subdomain), zap.String("id", tenant.ID))
	}
	return nil
}

func (l *Loader) createVehicles(ctx context.Context, seeds []VehicleSeed, res *Result) error {
	for _, s := range seeds {
		vehicle := models.Vehicle{
			Brand:    s.Brand,
			Model:    s.Model,
			Year:     s.Year,
			Plate:    s.Plate,
			Color:    s.Color,
			ClientID: res.ClientProfiles[s.Owner],
			TenantID: res.Tenants[s.Tenant],
		}
		if err := l.create(ctx, &vehicle); err != nil {
			return fail(PhaseVehicles, s.Plate, err)
		}
		res.Vehicles[s.Plate] = vehicle.ID
	}
	return nil
}

func (l *Loader) createServices(ctx context.Context, seeds []ServiceSeed, res *Result) error {
	for _, s := range seeds {
		service := models.Service{
			Title:       s.Title,
			Description: s.Description,
			Price:       s.Price,
			Duration:    s.Duration,
			TenantID:    res.Tenants[s.Tenant],
		}
		if err := l.create(ctx, &service); err != nil {
			return fail(PhaseServices, s.Title, err)
		}
		res.Services[serviceKey(s.Tenant, s.Title)] = service.ID
	}
	return nil
}

func (l *Loader) createBookings(ctx context.Context, seeds []BookingSeed, now time.Time, res *Result) error {
	today := startOfDay(now)
	for i, s := range seeds {
		booking := models.Booking{
			Date:      today.AddDate(0, 0, s.DayOffset),
			Time:      s.Time,
			Status:    s.Status,
			ClientID:  res.ClientProfiles[s.Client],
			VehicleID: res.Vehicles[s.Vehicle],
			TenantID:  res.Tenants[s.Tenant],
		}
		if s.SpecialInstructions != "" {
			instructions := s.SpecialInstructions
			booking.SpecialInstructions = &instructions
		}
		key := bookingKey(i, s)
		if err := l.create(ctx, &booking); err != nil {
			return fail(PhaseBookings, key, err)
		}
		res.Bookings = append(res.Bookings, booking.ID)

		for _, title := range s.Services {
			link := models.BookingService{
				BookingID: booking.ID,
				ServiceID: res.ServiceID(s.Tenant, title),
			}
			if err := l.create(ctx, &link); err != nil {
				return fail(PhaseBookings, key, err)
			}
			res.BookingServices = append(res.BookingServices, link.ID)
		}
	}
	return nil
}

func bookingKey(i int, s BookingSeed) string {
	return s.Client + " #" + strconv.Itoa(i)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
