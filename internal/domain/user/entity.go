// internal/domain/user/entity.go
package user

import "strings"

// User represents an account in the read-only user directory
type User struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"-" yaml:"password"` // bcrypt hash; never returned in JSON
	IsAdmin  bool   `json:"is_admin" yaml:"isAdmin"`
}

// Session represents an authenticated storefront session.
// It is created by sign-in or sign-up and destroyed by sign-out.
type Session struct {
	Email           string `json:"email"`
	CredentialToken string `json:"credential_token"`
	IsAdmin         bool   `json:"is_admin"`
}

// Directory provides synchronous read-only access to the user collection.
// The storefront never writes to it; sign-up only consults it for duplicates.
type Directory struct {
	users []User
}

// NewDirectory creates a directory over a fixed user collection
func NewDirectory(users []User) *Directory {
	return &Directory{users: users}
}

// Users returns the full user collection
func (d *Directory) Users() []User {
	return d.users
}

// FindByEmail looks up a user by email, case-insensitively
func (d *Directory) FindByEmail(email string) (User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range d.users {
		if strings.ToLower(u.Email) == email {
			return u, true
		}
	}
	return User{}, false
}
