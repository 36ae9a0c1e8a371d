package dto

// LoginFields is what the interactive login prompt collects.
type LoginFields struct {
	Company  string
	Username string
	Password string
}

// ProfileOutput reports who the workflow is acting as and whether the
// identity came from the store or a fresh login.
type ProfileOutput struct {
	ID        string
	Username  string
	FromStore bool
}
