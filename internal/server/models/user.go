// Package models defines server-side records persisted in the database.
package models

import "time"

// User is an account. HashedPassword is a bcrypt hash and is never
// serialized to clients.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
