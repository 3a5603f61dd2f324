package contract

import "context"

type IHasher interface {
	HashPassword(ctx context.Context, password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	// HashString digests long opaque values such as tokens. Not for passwords.
	HashString(s string) string
}
