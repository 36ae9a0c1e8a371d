package usecase

import (
	"context"
	"log/slog"

	"chefctl/internal/modules/auth/dto"
	authin "chefctl/internal/modules/auth/port/in"
	authout "chefctl/internal/modules/auth/port/out"
	"chefctl/internal/modules/auth/service"
	apperrors "chefctl/internal/platform/errors"
)

type Interactor struct {
	svc      *service.AuthService
	store    authout.CredentialStore
	remote   authout.Authenticator
	prompter authout.LoginPrompter
	log      *slog.Logger
}

func NewInteractor(svc *service.AuthService, store authout.CredentialStore, remote authout.Authenticator, prompter authout.LoginPrompter, log *slog.Logger) authin.Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Interactor{svc: svc, store: store, remote: remote, prompter: prompter, log: log}
}

func (i *Interactor) EnsureProfile(ctx context.Context) (dto.ProfileOutput, error) {
	if i.store.Peek(ctx) {
		creds, err := i.store.Load(ctx)
		if err != nil {
			return dto.ProfileOutput{}, err
		}
		i.remote.Resume(creds.Session)
		i.log.Debug("using stored credentials", "username", creds.Profile.Username)
		return dto.ProfileOutput{ID: creds.Profile.ID, Username: creds.Profile.Username, FromStore: true}, nil
	}
	return i.Login(ctx)
}

func (i *Interactor) Login(ctx context.Context) (dto.ProfileOutput, error) {
	fields, err := i.prompter.LoginFields(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	creds, err := i.svc.Login(ctx, fields.Username, fields.Password, fields.Company)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	i.log.Debug("logged in and stored credentials", "username", creds.Profile.Username)
	return dto.ProfileOutput{ID: creds.Profile.ID, Username: creds.Profile.Username}, nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.store.Clear(ctx)
}

func (i *Interactor) WhoAmI(ctx context.Context) (dto.ProfileOutput, error) {
	if !i.store.Peek(ctx) {
		return dto.ProfileOutput{}, apperrors.ErrNoCredentials
	}
	creds, err := i.store.Load(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return dto.ProfileOutput{ID: creds.Profile.ID, Username: creds.Profile.Username, FromStore: true}, nil
}
