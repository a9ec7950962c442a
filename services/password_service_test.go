package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasherRejectsInvalidCost(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{"below minimum", bcrypt.MinCost - 1, true},
		{"minimum", bcrypt.MinCost, false},
		{"default", DefaultBcryptCost, false},
		{"above maximum", bcrypt.MaxCost + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewBcryptHasher(tt.cost)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cost, h.Cost())
		})
	}
}

func TestBcryptHasherHashAndCompare(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("Senha123")
	require.NoError(t, err)

	assert.NotEqual(t, "Senha123", hash, "Hash must not store the plaintext")
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "Hash should be a bcrypt hash")
	assert.NoError(t, h.Compare(hash, "Senha123"))
	assert.Error(t, h.Compare(hash, "senha123"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := h.Hash("Senha123")
	require.NoError(t, err)
	second, err := h.Hash("Senha123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMockPasswordHasher(t *testing.T) {
	m := NewMockPasswordHasher()

	hash, err := m.Hash("Senha123")
	require.NoError(t, err)
	assert.Equal(t, 1, m.Calls())
	assert.NoError(t, m.Compare(hash, "Senha123"))
	assert.ErrorIs(t, m.Compare(hash, "short"), ErrMockHashMismatch)

	boom := errors.New("boom")
	m.FailWith(boom)
	_, err = m.Hash("Senha123")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, m.Calls())
}
