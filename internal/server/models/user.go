// Package models holds the server-side domain records.
package models

import "time"

// User is a registered account. PasswordHash is the bcrypt hash of the
// password; the plaintext is never stored. ID is assigned by the store on
// Create and is the only user attribute placed into tokens.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
