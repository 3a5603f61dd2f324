package usecasecontract

import (
	"context"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// MessageInput is a contact-form submission.
type MessageInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
}

type IMessageUseCase interface {
	Send(ctx context.Context, in MessageInput) (*entity.Message, error)
	ListAll(ctx context.Context) ([]*entity.Message, error)
}
