package seed

import (
	"errors"
	"fmt"
)

// Phase names a step of the seed run
type Phase string

// Phases in run order
const (
	PhaseValidate Phase = "validate"
	PhaseReset    Phase = "reset"
	PhasePlans    Phase = "plans"
	PhaseTenants  Phase = "tenants"
	PhaseAccounts Phase = "accounts"
	PhaseProfiles Phase = "profiles"
	PhaseVehicles Phase = "vehicles"
	PhaseServices Phase = "services"
	PhaseBookings Phase = "bookings"
)

var (
	// ErrInvalidCatalog wraps every catalog validation failure
	ErrInvalidCatalog = errors.New("invalid seed catalog")
	// ErrProfileNotFound means an upserted client account has no client profile
	ErrProfileNotFound = errors.New("client profile not found")
	// ErrRoleMismatch means an existing account was stored with another role
	ErrRoleMismatch = errors.New("account role differs from stored role")
)

// SeedError reports which phase (and which record, when known) failed.
// The underlying datastore or hashing error is available through Unwrap.
type SeedError struct {
	Phase Phase
	Key   string
	Err   error
}

// Error formats the phase, the record key and the cause
func (e *SeedError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("seed %s %q: %v", e.Phase, e.Key, e.Err)
	}
	return fmt.Sprintf("seed %s: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying error
func (e *SeedError) Unwrap() error {
	return e.Err
}

func fail(phase Phase, key string, err error) *SeedError {
	return &SeedError{Phase: phase, Key: key, Err: err}
}
