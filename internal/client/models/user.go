// Package models defines the DTOs exchanged with the ECG analysis service.
package models

import "time"

// User is the authenticated user's profile as returned by the service.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}
