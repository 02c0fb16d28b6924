package domain

import "strings"

// Employee is a personnel profile, distinct from the User account record.
// Role here is a free-text job tag, not an account role.
type Employee struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Role            string `json:"role,omitempty"`
	Phone           string `json:"phone,omitempty"`
	MobilePhone     string `json:"mobilePhone,omitempty"`
	Email           string `json:"email,omitempty"`
	Address         string `json:"address,omitempty"`
	LinkedinProfile string `json:"linkedinProfile,omitempty"`
	ProfileImage    string `json:"profileImage,omitempty"`
}

// DeriveUsername builds the canonical employee username from the name pair.
// It is recomputed on every create and edit so the username always tracks
// the current name.
func DeriveUsername(firstName, lastName string) string {
	return strings.ToLower(firstName + "." + lastName)
}
