package domain

// Role is a capability granted to an authenticated viewer.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// SessionIdentity is the authenticated viewer's credential and profile data,
// issued by the login endpoint and held client-side for the life of the
// process. It is immutable once issued: a re-login replaces it wholesale and
// a logout clears it entirely.
type SessionIdentity struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	UserID    int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// HasRole reports whether the identity carries the given capability. Every
// authenticated identity carries RoleUser; RoleAdmin requires the admin flag
// issued by the server.
func (i SessionIdentity) HasRole(r Role) bool {
	switch r {
	case RoleUser:
		return true
	case RoleAdmin:
		return i.Admin
	default:
		return false
	}
}

// AuthorizationValue renders the credential as an Authorization header value,
// e.g. "Bearer <token>".
func (i SessionIdentity) AuthorizationValue() string {
	return i.Type + " " + i.Token
}
