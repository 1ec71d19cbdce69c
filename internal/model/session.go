package model

// Session holds the license state for one program run. Nothing is persisted;
// validity is only ever re-checked by calling the remote endpoint again.
type Session struct {
	Key       string
	MachineID string
	Version   string
	Token     string
}

// Authenticated reports whether a login token was issued for this session
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// LoginResult is the interpreted response of the login endpoint
type LoginResult struct {
	OK      bool
	Token   string
	Message string
}

// ExpiryResult is the interpreted response of the expiry endpoint
type ExpiryResult struct {
	OK        bool
	ExpiresAt string
	Message   string
}
