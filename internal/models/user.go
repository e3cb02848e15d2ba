package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole is the access class of an identity, fixed at account creation.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether the role is one of the known access classes.
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User represents an account stored in the users table. The password hash
// never crosses the wire.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// JWTClaims is the identity embedded in access tokens and attached to the
// request context by the auth middleware.
type JWTClaims struct {
	UserID string   `json:"id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Name   string   `json:"name"`
	jwt.RegisteredClaims
}
