package mocks

import (
	"context"
	"errors"

	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

type MockMessageUsecase struct {
	ShouldFailSend bool
	ShouldFailList bool
	FailWith       error

	Sent []usecasecontract.MessageInput
}

var _ usecasecontract.IMessageUseCase = (*MockMessageUsecase)(nil)

func (m *MockMessageUsecase) Send(ctx context.Context, in usecasecontract.MessageInput) (*entity.Message, error) {
	if m.ShouldFailSend {
		if m.FailWith != nil {
			return nil, m.FailWith
		}
		return nil, errors.New("send failed")
	}
	m.Sent = append(m.Sent, in)
	return &entity.Message{ID: "mock-message-id", FirstName: in.FirstName, Message: in.Message}, nil
}

func (m *MockMessageUsecase) ListAll(ctx context.Context) ([]*entity.Message, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	messages := make([]*entity.Message, 0, len(m.Sent))
	for _, in := range m.Sent {
		messages = append(messages, &entity.Message{FirstName: in.FirstName, Message: in.Message})
	}
	return messages, nil
}
