package entity

import "time"

// RevokedToken marks a session token as unusable until it would have expired anyway.
type RevokedToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
