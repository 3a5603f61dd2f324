package contract

import (
	"context"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

type ITokenRepository interface {
	RevokeToken(ctx context.Context, token *entity.RevokedToken) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}
