package domain

// Profile is the authenticated user identity. Immutable once created; it
// identifies the employee on every subsequent call and persists across runs.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Cookie is one name/value pair of the service session.
type Cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Session is the opaque cookie state bound to a Profile. Whether it is still
// valid is only knowable by the remote service; an expired session surfaces
// as an authentication failure on first use.
type Session struct {
	Cookies []Cookie
}

// Empty reports whether the session carries no cookie state.
func (s Session) Empty() bool {
	return len(s.Cookies) == 0
}

// Credentials is the single persisted entity: one profile plus its session.
type Credentials struct {
	Profile Profile
	Session Session
}
