package entity

import "github.com/golang-jwt/jwt/v5"

// Claims is the decoded content of a session token.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}
