package usecase

import (
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateToken(userID string) (string, error)
	ParseToken(token string) (*entity.Claims, error)
}
