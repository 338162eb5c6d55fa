package user

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers() []User {
	return []User{
		{Username: "user1", Password: "password1"},
		{Username: "user2", Password: "password2"},
	}
}

func newTestRepo(t *testing.T, users []User) *MemoryRepo {
	t.Helper()
	repo, err := NewMemoryRepo(users)
	require.NoError(t, err)
	return repo
}

func TestService_Register(t *testing.T) {
	service := NewService(newTestRepo(t, seedUsers()), zerolog.Nop())
	ctx := context.Background()

	u, err := service.Register(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, User{Username: "alice", Password: "secret"}, u)

	_, err = service.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = service.Register(ctx, "user1", "x")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = service.Register(ctx, "", "secret")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Login(t *testing.T) {
	service := NewService(newTestRepo(t, seedUsers()), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "user1", "password1", nil},
		{"wrong password", "user1", "password2", ErrInvalidCredentials},
		{"unknown user", "nobody", "password1", ErrInvalidCredentials},
		{"missing password", "user1", "", ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := service.Login(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, User{Username: tt.username, Password: tt.password}, u)
		})
	}
}

func TestService_LoginRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, zerolog.Nop())

	boom := errors.New("boom")
	mockRepo.EXPECT().GetByUsername(gomock.Any(), "user1").Return(User{}, boom)

	_, err := service.Login(context.Background(), "user1", "password1")
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestService_ConcurrentRegistrationOfSameUsername(t *testing.T) {
	service := NewService(newTestRepo(t, nil), zerolog.Nop())

	var wins, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.Register(context.Background(), "racer", fmt.Sprintf("pw%d", i))
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, ErrAlreadyExists):
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(19), conflicts.Load())
}
