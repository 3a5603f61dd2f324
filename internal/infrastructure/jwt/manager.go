package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zeecare/hms-backend/internal/domain/entity"
	"github.com/zeecare/hms-backend/internal/usecase"
)

const (
	errTokenInvalid = "Json Web Token is invalid, Try again!"
	errTokenExpired = "Json Web Token is expired, Try again!"
)

// JWTManager signs and verifies HS256 session tokens carrying a user id.
type JWTManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

var _ usecase.JWTService = (*JWTManager)(nil)

func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), expiry: expiry, now: time.Now}
}

// GenerateToken issues a token for userID that expires after the configured lifetime.
func (m *JWTManager) GenerateToken(userID string) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	now := m.now()
	claims := entity.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry. Failures are auth errors.
func (m *JWTManager) ParseToken(tokenStr string) (*entity.Claims, error) {
	claims := &entity.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &entity.AppError{Kind: entity.KindAuth, Message: errTokenExpired, Err: err}
		}
		return nil, &entity.AppError{Kind: entity.KindAuth, Message: errTokenInvalid, Err: err}
	}
	if !token.Valid || claims.UserID == "" {
		return nil, entity.NewAuthError(errTokenInvalid)
	}
	return claims, nil
}
