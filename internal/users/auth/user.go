// Copyright (c) 2026 ReadTrace. All rights reserved.

/*
Package auth implements user identity and session management for ReadTrace.

It defines the core domain entities (User, Session) and the logic for
registration, login, refresh-token rotation, and password changes.

# Architecture

  - Service: Orchestrates the authentication use cases.
  - UserRepository: Postgres-backed account storage.
  - SessionStore: Redis-backed refresh-token sessions with automatic expiry.
*/
package auth

import (
	"time"

	"github.com/readtrace/readtrace/internal/platform/sec"
)

// # Domain Entities

// User represents a registered ReadTrace account.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session represents an active refresh-token session.
//
// Sessions live in Redis keyed by the hash of the refresh token, so a session
// disappears on its own once ExpiresAt passes.
type Session struct {
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldDisplayName     = "display_name"
	FieldLogin           = "login"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)
