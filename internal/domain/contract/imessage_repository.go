package contract

import (
	"context"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

type IMessageRepository interface {
	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context) ([]*entity.Message, error)
}
