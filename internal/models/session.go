package models

// SessionUser is the student identity held in a session after login.
type SessionUser struct {
	ID         int64  `json:"id"`
	Login      string `json:"login"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	FullName   string `json:"fullName"`
}

// SessionAdmin is the admin identity held in a session after admin login.
type SessionAdmin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Session carries two optional slots. A session exists as long as its token
// does; either slot may be nil, and logout drops the whole session.
type Session struct {
	User  *SessionUser  `json:"user,omitempty"`
	Admin *SessionAdmin `json:"admin,omitempty"`
}
