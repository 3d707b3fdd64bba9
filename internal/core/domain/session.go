package domain

// Session is the single authentication binding of the running instance.
// Two states exist: Anonymous {false, nil} and Authenticated {true, user}.
type Session struct {
	Authenticated bool  `json:"is_authenticated"`
	User          *User `json:"user"`
}

// Anonymous returns the cleared session.
func Anonymous() Session {
	return Session{}
}

// AuthenticatedAs binds a session to the given user, credential stripped.
func AuthenticatedAs(u User) Session {
	stripped := u.WithoutCredential()
	return Session{Authenticated: true, User: &stripped}
}
