package out

import (
	"context"

	"chefctl/internal/modules/auth/domain"
	"chefctl/internal/modules/auth/dto"
)

// CredentialStore persists the single credentials blob. Peek never fails: any
// read or parse problem reads as "nothing usable stored". Peek and Load share
// one validity check, so a true Peek is always followed by a clean Load.
type CredentialStore interface {
	Peek(ctx context.Context) bool
	Load(ctx context.Context) (domain.Credentials, error)
	Save(ctx context.Context, creds domain.Credentials) error
	Clear(ctx context.Context) error
}

// Authenticator is the remote side of the login lifecycle. Resume installs a
// stored session for the calls that follow.
type Authenticator interface {
	Login(ctx context.Context, username, password, company string) (domain.Profile, domain.Session, error)
	Resume(session domain.Session)
}

// LoginPrompter collects login fields interactively.
type LoginPrompter interface {
	LoginFields(ctx context.Context) (dto.LoginFields, error)
}
