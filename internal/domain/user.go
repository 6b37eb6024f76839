// Package domain contains core domain types for the symptom checker.
package domain

// User is a registered account. Passwords are stored as given and never
// serialized back to clients.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// NewUser holds the fields required to create a user.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
