package service

import (
	"context"
	"fmt"

	"chefctl/internal/modules/auth/domain"
	authout "chefctl/internal/modules/auth/port/out"
)

// AuthService performs a credentialed login and persists the result as one
// unit. A failed login never touches the store.
type AuthService struct {
	remote authout.Authenticator
	store  authout.CredentialStore
}

func NewAuthService(remote authout.Authenticator, store authout.CredentialStore) *AuthService {
	return &AuthService{remote: remote, store: store}
}

func (s *AuthService) Login(ctx context.Context, username, password, company string) (domain.Credentials, error) {
	if username == "" || password == "" {
		return domain.Credentials{}, fmt.Errorf("username and password are required")
	}
	profile, session, err := s.remote.Login(ctx, username, password, company)
	if err != nil {
		return domain.Credentials{}, err
	}
	creds := domain.Credentials{Profile: profile, Session: session}
	if err := s.store.Save(ctx, creds); err != nil {
		return domain.Credentials{}, err
	}
	return creds, nil
}
