package models

import "time"

// AuthResponse represents the response after successful authentication or
// a profile update. The password hash is never part of it.
type AuthResponse struct {
	ID        string    `json:"id"` // UUID
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Token     string    `json:"token"` // JWT token
}
