package model

import "time"

// Identity is the session user as seen by the listings domain.  It is
// what the JWT middleware puts into the request context and what gets
// snapshotted into a listing's owner fields.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// User is an identity plus its credential, as held by the in-memory
// user registry.
//
// Fields:
//  Identity     – public identity (id, name, phone, email).
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – registration time.
type User struct {
	Identity
	PasswordHash string
	CreatedAt    time.Time
}
