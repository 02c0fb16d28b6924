package domain

// Account roles. Role guards on routes compare against these values.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether s is a recognised account role.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleUser
}

// User models an account that can authenticate against the API.
// PasswordHash carries the bcrypt hash and is never serialized.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
