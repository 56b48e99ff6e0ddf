package rolegate

import "camisetas-api/models"

// Decision is the tri-state outcome of a role check. Pending means the
// identity has not been resolved yet, which is distinct from a denied
// check — callers show a loading state instead of rejecting early.
type Decision string

const (
	Pending Decision = "pending"
	Admin   Decision = "admin"
	User    Decision = "user"
)

// Decide computes the caller's role from its email. The role is derived,
// never stored, and recomputed on every check.
func Decide(identity *models.User, adminEmail string) Decision {
	if identity == nil {
		return Pending
	}
	if identity.Email == adminEmail {
		return Admin
	}
	return User
}

// IsAdmin reports whether an already-resolved email belongs to the admin
// account. Exact, case-sensitive match.
func IsAdmin(email, adminEmail string) bool {
	return email == adminEmail
}
