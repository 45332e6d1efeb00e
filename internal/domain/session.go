package domain

// Session is the authenticated identity: an opaque bearer token plus the
// cached profile. The profile is never populated while the token is absent.
type Session struct {
	Token   string
	Profile *User
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}
