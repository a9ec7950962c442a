package seed

import "github.com/kendall-kelly/detailing-seed/models"

// Catalog is the full fixture set written by a seed run. Records refer to
// each other by natural key: plans by name, tenants by subdomain, accounts by
// email, vehicles by plate and services by title within their tenant.
type Catalog struct {
	Plans    []PlanSeed
	Tenants  []TenantSeed
	Accounts []AccountSeed
	Vehicles []VehicleSeed
	Services []ServiceSeed
	Bookings []BookingSeed
}

// PlanSeed describes a subscription plan, keyed by Name
type PlanSeed struct {
	Name         string   `validate:"required"`
	Description  string   `validate:"required"`
	Price        float64  `validate:"gt=0"`
	BillingCycle string   `validate:"oneof=monthly yearly"`
	Features     []string `validate:"min=1,dive,required"`
	MaxEmployees int      `validate:"gt=0"`
	MaxClients   *int     `validate:"omitempty,gt=0"` // nil means unlimited
}

// TenantSeed describes a tenant. Plan names the PlanSeed it subscribes to.
type TenantSeed struct {
	Name              string                    `validate:"required"`
	Subdomain         string                    `validate:"required,max=63,subdomain"`
	ContactEmail      string                    `validate:"omitempty,email"`
	ContactPhone      string                    `validate:"omitempty,numeric"`
	Address           string                    `validate:"required"`
	City              string                    `validate:"required"`
	State             string                    `validate:"required,len=2"`
	ZipCode           string                    `validate:"required"`
	Status            models.SubscriptionStatus `validate:"oneof=ACTIVE TRIAL PAST_DUE CANCELED"`
	Plan              string                    `validate:"required"`
	BillingCustomerID string
}

// AccountSeed describes one login. Profile selects which role profile is
// created: EmployeeSeed for TENANT_ADMIN and EMPLOYEE, ClientSeed for CLIENT.
type AccountSeed struct {
	Email    string      `validate:"required,email"`
	Password string      `validate:"required,min=8"`
	Role     models.Role `validate:"oneof=TENANT_ADMIN EMPLOYEE CLIENT"`
	Tenant   string      `validate:"required"`
	Profile  ProfileSeed `validate:"required"`
}

// ProfileSeed is implemented only by EmployeeSeed and ClientSeed.
type ProfileSeed interface {
	isProfileSeed()
}

// EmployeeSeed is the profile of a TENANT_ADMIN or EMPLOYEE account
type EmployeeSeed struct {
	Name string `validate:"required"`
}

// ClientSeed is the profile of a CLIENT account
type ClientSeed struct {
	Name     string `validate:"required"`
	WhatsApp string `validate:"required,numeric,min=10,max=13"`
}

func (EmployeeSeed) isProfileSeed() {}
func (ClientSeed) isProfileSeed()   {}

// VehicleSeed is a car owned by the client account with email Owner
type VehicleSeed struct {
	Owner  string `validate:"required,email"` // client account email
	Tenant string `validate:"required"`
	Brand  string `validate:"required"`
	Model  string `validate:"required"`
	Year   int    `validate:"gte=1900,lte=2100"`
	Plate  string `validate:"required,alphanum,max=10"`
	Color  string
}

// ServiceSeed is a service offered by Tenant. Titles are unique per tenant.
type ServiceSeed struct {
	Tenant      string  `validate:"required"`
	Title       string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"gt=0"`
	Duration    int     `validate:"gt=0"` // minutes
}

// BookingSeed is scheduled DayOffset days after the start of the run day.
type BookingSeed struct {
	Tenant              string `validate:"required"`
	Client              string `validate:"required,email"`
	Vehicle             string `validate:"required"`
	DayOffset           int    `validate:"gte=0"`
	Time                string `validate:"required,datetime=15:04"`
	Status              string `validate:"oneof=pending confirmed completed cancelled"`
	SpecialInstructions string
	Services            []string `validate:"min=1,dive,required"`
}

func intPtr(n int) *int {
	return &n
}

// DefaultCatalog returns the sample data for local development: three plans,
// three tenants, seven accounts, and vehicles, services and bookings for the
// trial tenant.
func DefaultCatalog() Catalog {
	const password = "Senha123"

	return Catalog{
		Plans: []PlanSeed{
			{
				Name:         "Básico",
				Description:  "Ideal para estéticas pequenas que estão começando",
				Price:        36.99,
				BillingCycle: models.BillingCycleMonthly,
				Features: []string{
					"Agendamentos online",
					"Gerenciamento de clientes",
					"Lembretes por WhatsApp",
					"Painel administrativo",
				},
				MaxEmployees: 2,
				MaxClients:   intPtr(100),
			},
			{
				Name:         "Profissional",
				Description:  "Perfeito para estéticas em crescimento",
				Price:        46.99,
				BillingCycle: models.BillingCycleMonthly,
				Features: []string{
					"Todas as funcionalidades do plano Básico",
					"Relatórios avançados",
					"Múltiplos serviços",
					"Personalização da página de agendamento",
				},
				MaxEmployees: 5,
				MaxClients:   intPtr(500),
			},
			{
				Name:         "Premium",
				Description:  "Para estéticas de grande porte com alto volume",
				Price:        56.99,
				BillingCycle: models.BillingCycleMonthly,
				Features: []string{
					"Todas as funcionalidades do plano Profissional",
					"API para integração com outros sistemas",
					"Suporte prioritário",
					"Recursos de marketing",
				},
				MaxEmployees: 10,
			},
		},
		Tenants: []TenantSeed{
			{
				Name:              "Premium Estética",
				Subdomain:         "premium",
				ContactEmail:      "contato@premiumestetica.com.br",
				ContactPhone:      "11999999999",
				Address:           "Av. Paulista, 1000",
				City:              "São Paulo",
				State:             "SP",
				ZipCode:           "01310-100",
				Status:            models.SubscriptionActive,
				Plan:              "Premium",
				BillingCustomerID: "cus_premium123",
			},
			{
				Name:              "Estética Modelo",
				Subdomain:         "modelo",
				ContactEmail:      "contato@esteticamodelo.com.br",
				ContactPhone:      "11988888888",
				Address:           "Rua Augusta, 500",
				City:              "São Paulo",
				State:             "SP",
				ZipCode:           "01304-000",
				Status:            models.SubscriptionActive,
				Plan:              "Profissional",
				BillingCustomerID: "cus_modelo123",
			},
			{
				Name:              "Estética Teste",
				Subdomain:         "teste",
				ContactEmail:      "contato@estaticateste.com.br",
				ContactPhone:      "11977777777",
				Address:           "Rua Teste, 123",
				City:              "São Paulo",
				State:             "SP",
				ZipCode:           "04001-000",
				Status:            models.SubscriptionTrial,
				Plan:              "Básico",
				BillingCustomerID: "cus_teste123",
			},
		},
		Accounts: []AccountSeed{
			{Email: "admin@premium.com", Password: password, Role: models.RoleTenantAdmin, Tenant: "premium",
				Profile: EmployeeSeed{Name: "Administrador Premium"}},
			{Email: "funcionario@premium.com", Password: password, Role: models.RoleEmployee, Tenant: "premium",
				Profile: EmployeeSeed{Name: "Funcionário Premium"}},
			{Email: "joao@exemplo.com", Password: password, Role: models.RoleClient, Tenant: "teste",
				Profile: ClientSeed{Name: "João Silva", WhatsApp: "11999998888"}},
			{Email: "maria@exemplo.com", Password: password, Role: models.RoleClient, Tenant: "teste",
				Profile: ClientSeed{Name: "Maria Oliveira", WhatsApp: "11997776666"}},
			{Email: "carlos@exemplo.com", Password: password, Role: models.RoleClient, Tenant: "teste",
				Profile: ClientSeed{Name: "Carlos Pereira", WhatsApp: "11995554444"}},
			{Email: "admin@teste.com", Password: password, Role: models.RoleTenantAdmin, Tenant: "teste",
				Profile: EmployeeSeed{Name: "Administrador Teste"}},
			{Email: "funcionario@teste.com", Password: password, Role: models.RoleEmployee, Tenant: "teste",
				Profile: EmployeeSeed{Name: "Funcionário Teste"}},
		},
		Vehicles: []VehicleSeed{
			{Owner: "joao@exemplo.com", Tenant: "teste", Brand: "Honda", Model: "Civic", Year: 2020, Plate: "ABC1234", Color: "Prata"},
			{Owner: "maria@exemplo.com", Tenant: "teste", Brand: "Toyota", Model: "Corolla", Year: 2021, Plate: "DEF5678", Color: "Preto"},
			{Owner: "carlos@exemplo.com", Tenant: "teste", Brand: "Jeep", Model: "Renegade", Year: 2019, Plate: "GHI9012", Color: "Vermelho"},
		},
		Services: []ServiceSeed{
			{Tenant: "teste", Title: "Lavagem Completa",
				Description: "Lavagem externa e interna completa com produtos premium", Price: 80, Duration: 60},
			{Tenant: "teste", Title: "Polimento",
				Description: "Polimento completo da carroceria para remover riscos superficiais", Price: 200, Duration: 180},
			{Tenant: "teste", Title: "Higienização Interna",
				Description: "Limpeza profunda de todo interior do veículo incluindo bancos e carpetes", Price: 150, Duration: 120},
			{Tenant: "teste", Title: "Cristalização",
				Description: "Proteção e brilho para a pintura com durabilidade de até 6 meses", Price: 250, Duration: 240},
		},
		Bookings: []BookingSeed{
			{Tenant: "teste", Client: "joao@exemplo.com", Vehicle: "ABC1234", DayOffset: 0, Time: "10:00",
				Status: models.BookingConfirmed, SpecialInstructions: "Cuidado especial com o teto solar",
				Services: []string{"Lavagem Completa"}},
			{Tenant: "teste", Client: "maria@exemplo.com", Vehicle: "DEF5678", DayOffset: 0, Time: "14:30",
				Status: models.BookingConfirmed, Services: []string{"Polimento"}},
			{Tenant: "teste", Client: "carlos@exemplo.com", Vehicle: "GHI9012", DayOffset: 1, Time: "09:00",
				Status: models.BookingPending, Services: []string{"Higienização Interna"}},
			{Tenant: "teste", Client: "joao@exemplo.com", Vehicle: "ABC1234", DayOffset: 1, Time: "15:00",
				Status: models.BookingConfirmed, Services: []string{"Cristalização"}},
			{Tenant: "teste", Client: "maria@exemplo.com", Vehicle: "DEF5678", DayOffset: 2, Time: "11:00",
				Status: models.BookingPending, Services: []string{"Lavagem Completa"}},
		},
	}
}
