package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	out "chefctl/internal/modules/auth/adapter/out"
	"chefctl/internal/modules/auth/domain"
	"chefctl/internal/modules/auth/dto"
	authin "chefctl/internal/modules/auth/port/in"
	authout "chefctl/internal/modules/auth/port/out"
	"chefctl/internal/modules/auth/service"
	"chefctl/internal/modules/auth/usecase"
	apperrors "chefctl/internal/platform/errors"
)

type fakeAuthenticator struct {
	profile  domain.Profile
	session  domain.Session
	loginErr error
	logins   int
	resumed  *domain.Session
}

func (f *fakeAuthenticator) Login(_ context.Context, _, _, _ string) (domain.Profile, domain.Session, error) {
	f.logins++
	if f.loginErr != nil {
		return domain.Profile{}, domain.Session{}, f.loginErr
	}
	return f.profile, f.session, nil
}

func (f *fakeAuthenticator) Resume(s domain.Session) { f.resumed = &s }

type fakePrompter struct {
	fields  dto.LoginFields
	err     error
	prompts int
}

func (f *fakePrompter) LoginFields(context.Context) (dto.LoginFields, error) {
	f.prompts++
	return f.fields, f.err
}

func newUsecase(t *testing.T, remote *fakeAuthenticator, prompter *fakePrompter) (authin.Usecase, *testStore) {
	t.Helper()
	store := &testStore{inner: out.NewFileCredentialStore(filepath.Join(t.TempDir(), "creds.json"))}
	svc := service.NewAuthService(remote, store)
	return usecase.NewInteractor(svc, store, remote, prompter, nil), store
}

// testStore counts writes on top of the real file store.
type testStore struct {
	inner authout.CredentialStore
	saves int
}

func (s *testStore) Peek(ctx context.Context) bool { return s.inner.Peek(ctx) }
func (s *testStore) Load(ctx context.Context) (domain.Credentials, error) {
	return s.inner.Load(ctx)
}
func (s *testStore) Save(ctx context.Context, creds domain.Credentials) error {
	s.saves++
	return s.inner.Save(ctx, creds)
}
func (s *testStore) Clear(ctx context.Context) error { return s.inner.Clear(ctx) }

func TestEnsureProfileLogsInOnceThenUsesStore(t *testing.T) {
	t.Parallel()
	remote := &fakeAuthenticator{
		profile: domain.Profile{ID: "42", Username: "jdoe"},
		session: domain.Session{Cookies: []domain.Cookie{{Name: "s", Value: "v"}}},
	}
	prompter := &fakePrompter{fields: dto.LoginFields{Company: "acme", Username: "jdoe", Password: "pw"}}
	uc, store := newUsecase(t, remote, prompter)
	ctx := context.Background()

	first, err := uc.EnsureProfile(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.FromStore || first.Username != "jdoe" {
		t.Fatalf("first run must be a fresh login, got %+v", first)
	}
	if store.saves != 1 {
		t.Fatalf("login must persist exactly once, got %d saves", store.saves)
	}

	second, err := uc.EnsureProfile(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.FromStore || second.ID != "42" {
		t.Fatalf("second run must come from the store unchanged, got %+v", second)
	}
	if prompter.prompts != 1 || remote.logins != 1 {
		t.Fatalf("stored credentials must skip prompt and login, got %d prompts %d logins", prompter.prompts, remote.logins)
	}
	if remote.resumed == nil || len(remote.resumed.Cookies) != 1 {
		t.Fatalf("stored session must be resumed into the client")
	}
}

func TestFailedLoginDoesNotTouchStore(t *testing.T) {
	t.Parallel()
	remote := &fakeAuthenticator{loginErr: apperrors.ErrAuthentication}
	prompter := &fakePrompter{fields: dto.LoginFields{Username: "jdoe", Password: "bad"}}
	uc, store := newUsecase(t, remote, prompter)

	if _, err := uc.EnsureProfile(context.Background()); !errors.Is(err, apperrors.ErrAuthentication) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("failed login must not save credentials")
	}
	if store.Peek(context.Background()) {
		t.Fatalf("store must stay empty after failed login")
	}
}

func TestEmptyFieldsFailBeforeRemoteCall(t *testing.T) {
	t.Parallel()
	remote := &fakeAuthenticator{}
	prompter := &fakePrompter{fields: dto.LoginFields{Company: "acme"}}
	uc, _ := newUsecase(t, remote, prompter)

	if _, err := uc.Login(context.Background()); err == nil {
		t.Fatalf("blank username and password must fail")
	}
	if remote.logins != 0 {
		t.Fatalf("validation must run before the remote call")
	}
}

func TestWhoAmIWithoutStoreReportsNoCredentials(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t, &fakeAuthenticator{}, &fakePrompter{})
	if _, err := uc.WhoAmI(context.Background()); !errors.Is(err, apperrors.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

func TestLogoutClearsStoredCredentials(t *testing.T) {
	t.Parallel()
	remote := &fakeAuthenticator{
		profile: domain.Profile{ID: "42", Username: "jdoe"},
		session: domain.Session{Cookies: []domain.Cookie{{Name: "s", Value: "v"}}},
	}
	prompter := &fakePrompter{fields: dto.LoginFields{Username: "jdoe", Password: "pw"}}
	uc, store := newUsecase(t, remote, prompter)
	ctx := context.Background()

	if _, err := uc.Login(ctx); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.Peek(ctx) {
		t.Fatalf("logout must remove the blob")
	}
}
