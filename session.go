package wallet

// Session identifies the principal acting on the ledger. It is built by the
// authentication collaborator and passed explicitly into every operation;
// the ledger itself holds no login state.
type Session struct {
	User          string
	Authenticated bool
}

// NewSession returns a session for an authenticated principal.
func NewSession(user string) Session {
	return Session{User: user, Authenticated: true}
}

// restricted is the precondition every ledger operation checks before
// touching the store.
func (s Session) restricted() error {
	if !s.Authenticated || s.User == "" {
		return ErrNotLoggedIn
	}
	return nil
}
