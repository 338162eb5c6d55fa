package user

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("component", "user").Logger(),
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	if username == "" || password == "" {
		return User{}, ErrValidation
	}

	newUser := User{Username: username, Password: password}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}

	s.log.Debug().Str("username", username).Msg("user registered")
	return newUser, nil
}

// Login returns the stored user when username and password both match.
func (s *Service) Login(ctx context.Context, username, password string) (User, error) {
	if username == "" || password == "" {
		return User{}, ErrValidation
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if u.Password != password {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}
