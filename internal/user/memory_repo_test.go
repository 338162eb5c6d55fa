package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryRepo(t *testing.T) {
	tests := []struct {
		name    string
		seed    []User
		wantErr string
	}{
		{"seeded", seedUsers(), ""},
		{"empty", nil, ""},
		{"duplicate username", append(seedUsers(), User{Username: "user1", Password: "other"}), `duplicate username "user1"`},
		{"missing username", []User{{Password: "password1"}}, "missing username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewMemoryRepo(tt.seed)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, repo)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, repo)
		})
	}
}

func TestMemoryRepo_GetByUsername(t *testing.T) {
	repo := newTestRepo(t, seedUsers())

	u, err := repo.GetByUsername(context.Background(), "user2")
	require.NoError(t, err)
	assert.Equal(t, User{Username: "user2", Password: "password2"}, u)

	_, err = repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
