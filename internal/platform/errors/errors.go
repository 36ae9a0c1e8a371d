package apperrors

import "errors"

// Failure taxonomy for the ordering client. Every component wraps one of
// these sentinels so callers can classify with errors.Is without knowing
// adapter internals.
var (
	// ErrAuthentication covers rejected credentials and sessions the
	// service no longer recognizes. Expiry is only discoverable on use.
	ErrAuthentication = errors.New("authentication failed")

	// ErrTransport covers network-level failures: unreachable host,
	// timeout, TLS trouble.
	ErrTransport = errors.New("service unreachable")

	// ErrProtocol covers responses that are not JSON or lack the
	// expected result envelope.
	ErrProtocol = errors.New("unexpected service response")

	// ErrCorruptStore means the credentials file exists but cannot be
	// decoded into a usable profile and session.
	ErrCorruptStore = errors.New("stored credentials are corrupt")

	// ErrStoreWrite means persisting credentials failed at the I/O level.
	ErrStoreWrite = errors.New("could not write credentials")

	// ErrNoCredentials means no credentials file is present.
	ErrNoCredentials = errors.New("no stored credentials")

	// ErrPromptCancelled means the user backed out of an interactive step.
	ErrPromptCancelled = errors.New("cancelled")
)
