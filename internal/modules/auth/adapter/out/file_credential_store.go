package out

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chefctl/internal/modules/auth/domain"
	authout "chefctl/internal/modules/auth/port/out"
	apperrors "chefctl/internal/platform/errors"
)

// storedBlob is the on-disk shape: the profile in the clear, the session as
// base64-wrapped JSON so the cookie state stays an opaque unit.
type storedBlob struct {
	Profile domain.Profile `json:"profile"`
	Cookies string         `json:"cookies"`
}

// FileCredentialStore keeps the single credentials blob at one well-known
// path. Single user, single process at a time; no locking.
type FileCredentialStore struct {
	path string
}

func NewFileCredentialStore(path string) authout.CredentialStore {
	return &FileCredentialStore{path: path}
}

// decode is the one validity check shared by Peek and Load, so the probe and
// the loader can never disagree.
func decode(raw []byte) (domain.Credentials, error) {
	var blob storedBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: %v", apperrors.ErrCorruptStore, err)
	}
	if blob.Profile.ID == "" {
		return domain.Credentials{}, fmt.Errorf("%w: missing profile id", apperrors.ErrCorruptStore)
	}
	if blob.Cookies == "" {
		return domain.Credentials{}, fmt.Errorf("%w: missing session data", apperrors.ErrCorruptStore)
	}
	payload, err := base64.StdEncoding.DecodeString(blob.Cookies)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: session data is not base64", apperrors.ErrCorruptStore)
	}
	var cookies []domain.Cookie
	if err := json.Unmarshal(payload, &cookies); err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: session data does not decode", apperrors.ErrCorruptStore)
	}
	return domain.Credentials{
		Profile: blob.Profile,
		Session: domain.Session{Cookies: cookies},
	}, nil
}

func (s *FileCredentialStore) Peek(_ context.Context) bool {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	_, err = decode(raw)
	return err == nil
}

func (s *FileCredentialStore) Load(_ context.Context) (domain.Credentials, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Credentials{}, apperrors.ErrNoCredentials
		}
		return domain.Credentials{}, fmt.Errorf("%w: %v", apperrors.ErrCorruptStore, err)
	}
	return decode(raw)
}

func (s *FileCredentialStore) Save(_ context.Context, creds domain.Credentials) error {
	cookies := creds.Session.Cookies
	if cookies == nil {
		cookies = []domain.Cookie{}
	}
	payload, err := json.Marshal(cookies)
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", apperrors.ErrStoreWrite, err)
	}
	blob := storedBlob{
		Profile: creds.Profile,
		Cookies: base64.StdEncoding.EncodeToString(payload),
	}
	raw, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("%w: encode blob: %v", apperrors.ErrStoreWrite, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreWrite, err)
	}
	// Write-then-rename so a crash mid-write leaves the old blob intact.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreWrite, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreWrite, err)
	}
	return nil
}

func (s *FileCredentialStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreWrite, err)
	}
	return nil
}
