package seed

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return slug.IsSlug(s) && !strings.Contains(s, "_")
	})
	if err != nil {
		panic(fmt.Sprintf("register subdomain validation: %v", err))
	}
	return v
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
}

func serviceKey(tenant, title string) string {
	return tenant + "/" + title
}

// Validate checks field formats and that every cross reference in the
// catalog resolves inside a single tenant.
func (c Catalog) Validate() error {
	plans := make(map[string]bool, len(c.Plans))
	for _, p := range c.Plans {
		if err := validate.Struct(p); err != nil {
			return invalid("plan %q: %v", p.Name, err)
		}
		if plans[p.Name] {
			return invalid("duplicate plan %q", p.Name)
		}
		plans[p.Name] = true
	}

	tenants := make(map[string]bool, len(c.Tenants))
	for _, t := range c.Tenants {
		if err := validate.Struct(t); err != nil {
			return invalid("tenant %q: %v", t.Subdomain, err)
		}
		if tenants[t.Subdomain] {
			return invalid("duplicate subdomain %q", t.Subdomain)
		}
		if !plans[t.Plan] {
			return invalid("tenant %q references unknown plan %q", t.Subdomain, t.Plan)
		}
		tenants[t.Subdomain] = true
	}

	// email -> tenant, for client accounts only
	clients := make(map[string]string)
	emails := make(map[string]bool, len(c.Accounts))
	for _, a := range c.Accounts {
		if err := validateAccount(a); err != nil {
			return err
		}
		if emails[a.Email] {
			return invalid("duplicate account %q", a.Email)
		}
		if !tenants[a.Tenant] {
			return invalid("account %q references unknown tenant %q", a.Email, a.Tenant)
		}
		emails[a.Email] = true
		if a.Role.UsesClientProfile() {
			clients[a.Email] = a.Tenant
		}
	}

	// plate -> owner email
	vehicles := make(map[string]string, len(c.Vehicles))
	for _, v := range c.Vehicles {
		if err := validate.Struct(v); err != nil {
			return invalid("vehicle %q: %v", v.Plate, err)
		}
		if _, dup := vehicles[v.Plate]; dup {
			return invalid("duplicate plate %q", v.Plate)
		}
		tenant, ok := clients[v.Owner]
		if !ok {
			return invalid("vehicle %q owner %q is not a client account", v.Plate, v.Owner)
		}
		if tenant != v.Tenant {
			return invalid("vehicle %q is scoped to %q but its owner belongs to %q", v.Plate, v.Tenant, tenant)
		}
		vehicles[v.Plate] = v.Owner
	}

	services := make(map[string]bool, len(c.Services))
	for _, s := range c.Services {
		if err := validate.Struct(s); err != nil {
			return invalid("service %q: %v", s.Title, err)
		}
		if !tenants[s.Tenant] {
			return invalid("service %q references unknown tenant %q", s.Title, s.Tenant)
		}
		key := serviceKey(s.Tenant, s.Title)
		if services[key] {
			return invalid("duplicate service %q in tenant %q", s.Title, s.Tenant)
		}
		services[key] = true
	}

	for i, b := range c.Bookings {
		if err := validate.Struct(b); err != nil {
			return invalid("booking %d: %v", i, err)
		}
		tenant, ok := clients[b.Client]
		if !ok {
			return invalid("booking %d client %q is not a client account", i, b.Client)
		}
		if tenant != b.Tenant {
			return invalid("booking %d is scoped to %q but its client belongs to %q", i, b.Tenant, tenant)
		}
		owner, ok := vehicles[b.Vehicle]
		if !ok {
			return invalid("booking %d references unknown vehicle %q", i, b.Vehicle)
		}
		if owner != b.Client {
			return invalid("booking %d vehicle %q is not owned by %q", i, b.Vehicle, b.Client)
		}
		for _, title := range b.Services {
			if !services[serviceKey(b.Tenant, title)] {
				return invalid("booking %d references unknown service %q in tenant %q", i, title, b.Tenant)
			}
		}
	}

	return nil
}

func validateAccount(a AccountSeed) error {
	if err := validate.Struct(a); err != nil {
		return invalid("account %q: %v", a.Email, err)
	}

	switch p := a.Profile.(type) {
	case EmployeeSeed:
		if a.Role.UsesClientProfile() {
			return invalid("account %q has role %s but an employee profile", a.Email, a.Role)
		}
		if err := validate.Struct(p); err != nil {
			return invalid("account %q employee profile: %v", a.Email, err)
		}
	case ClientSeed:
		if !a.Role.UsesClientProfile() {
			return invalid("account %q has role %s but a client profile", a.Email, a.Role)
		}
		if err := validate.Struct(p); err != nil {
			return invalid("account %q client profile: %v", a.Email, err)
		}
	default:
		return invalid("account %q has unsupported profile %T", a.Email, a.Profile)
	}

	return nil
}
