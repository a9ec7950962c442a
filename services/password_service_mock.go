package services

import (
	"errors"
	"fmt"
	"sync"
)

// ErrMockHashMismatch is returned by MockPasswordHasher.Compare on a mismatch
var ErrMockHashMismatch = errors.New("mock: hash does not match password")

// MockPasswordHasher is a mock implementation of PasswordHasher for testing.
// It produces a readable, non-secret "hash" and counts calls.
type MockPasswordHasher struct {
	mu    sync.Mutex
	calls int
	err   error
}

// NewMockPasswordHasher creates a new mock password hasher
func NewMockPasswordHasher() *MockPasswordHasher {
	return &MockPasswordHasher{}
}

// FailWith makes every subsequent Hash call return err
func (m *MockPasswordHasher) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times Hash has been called
func (m *MockPasswordHasher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Hash simulates hashing a password
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return fmt.Sprintf("mock$%d$%d", len(password), m.calls), nil
}

// Compare only checks the length recorded in the mock hash
func (m *MockPasswordHasher) Compare(hash, password string) error {
	var length, n int
	if _, err := fmt.Sscanf(hash, "mock$%d$%d", &length, &n); err != nil {
		return fmt.Errorf("mock: malformed hash: %w", err)
	}
	if length != len(password) {
		return ErrMockHashMismatch
	}
	return nil
}
