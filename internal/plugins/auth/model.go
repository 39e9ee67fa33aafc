// Package auth handles user accounts and session management for AuditDesk.
// Users are persisted as a JSON document in the key-value store; sessions
// live in Redis under their own TTL'd keys and are presented to clients as
// opaque bearer tokens.
//
// This is a CORE plugin -- always enabled, cannot be disabled.
package auth

import (
	"time"
)

// User represents a registered AuditDesk user.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"fullName"`
	BusinessName string     `json:"businessName,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// storedUser is the on-disk shape. Unlike User it carries the password
// hash, so it must never be serialized onto the wire.
type storedUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"fullName"`
	BusinessName string     `json:"businessName,omitempty"`
	PasswordHash string     `json:"passwordHash"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

func (u storedUser) toUser() *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		BusinessName: u.BusinessName,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}

// --- Request DTOs (bound from HTTP requests) ---

// RegisterRequest holds the fields submitted at sign-up.
type RegisterRequest struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Password     string `json:"password"`
}

// LoginRequest holds the sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Service Input DTOs (passed from handler to service) ---

// RegisterInput is the validated input for creating a new user.
type RegisterInput struct {
	Email        string
	FullName     string
	BusinessName string
	Password     string
}

// LoginInput is the validated input for authenticating a user.
type LoginInput struct {
	Email    string
	Password string
}

// --- Session ---

// Session represents an authenticated user session stored in Redis.
// The token is the key suffix, and this struct is the value (JSON-encoded).
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
