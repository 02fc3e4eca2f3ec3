// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record behind every API credential. A user is either
// auto-generated (anonymous, random name, no password) or explicitly
// registered (chosen name plus a password hash) — never a mix.
type User struct {
	ID               int64     // Server-assigned identifier, immutable.
	Name             string    // Unique login name; a random UUID string for auto-generated users.
	PasswordHash     string    // Peppered bcrypt hash. Empty for auto-generated users.
	IsAutoGenerated  bool      // Immutable after creation.
	IsAdmin          bool
	RegistrationDate time.Time // Set by the server on creation.
}

// AuthenticatedUser is the transient projection of a User handed back to the
// delivery layer after a successful registration, login, or token check.
// It is never persisted; the token it carries is the only server-issued state.
type AuthenticatedUser struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	IsAdmin          bool      `json:"isAdmin"`
	IsAutoGenerated  bool      `json:"isAutoGenerated"`
	RegistrationDate time.Time `json:"registrationDate"`
	Token            string    `json:"token,omitempty"`
}

// AuthUserFromUser builds the caller-facing projection of a stored user.
// The token is attached separately by whoever issues it.
func AuthUserFromUser(user *User) *AuthenticatedUser {
	if user == nil {
		return nil
	}

	return &AuthenticatedUser{
		ID:               user.ID,
		Name:             user.Name,
		IsAdmin:          user.IsAdmin,
		IsAutoGenerated:  user.IsAutoGenerated,
		RegistrationDate: user.RegistrationDate,
	}
}
