package chefapi

// Session is the cookie state the service issues at login. It is an explicit
// value rather than a shared jar so it can be persisted, restored into a new
// Client, and faked in tests. The content is opaque: only the service can
// tell whether it is still valid.
type Session struct {
	Cookies []Cookie `json:"cookies"`
}

// Cookie is the name/value pair the service round-trips. All calls target a
// single base URL, so path and domain attributes are not tracked.
type Cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Empty reports whether the session carries no cookies at all.
func (s Session) Empty() bool {
	return len(s.Cookies) == 0
}
