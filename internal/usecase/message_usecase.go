package usecase

import (
	"context"
	"time"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

type MessageUsecase struct {
	messageRepo   contract.IMessageRepository
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

func NewMessageUsecase(messageRepo contract.IMessageRepository, logger usecasecontract.IAppLogger, validator usecasecontract.IValidator, uuidGenerator contract.IUUIDGenerator) *MessageUsecase {
	return &MessageUsecase{
		messageRepo:   messageRepo,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

var _ usecasecontract.IMessageUseCase = (*MessageUsecase)(nil)

// Send validates and stores a contact-form message.
func (uc *MessageUsecase) Send(ctx context.Context, in usecasecontract.MessageInput) (*entity.Message, error) {
	message := &entity.Message{
		ID:        uc.uuidGenerator.NewUUID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.validator.ValidateStruct(message); err != nil {
		return nil, err
	}
	if err := uc.messageRepo.CreateMessage(ctx, message); err != nil {
		uc.logger.Errorf("failed to store message from %s: %v", message.Email, err)
		return nil, entity.NewInternalError("failed to send message", err)
	}
	return message, nil
}

func (uc *MessageUsecase) ListAll(ctx context.Context) ([]*entity.Message, error) {
	messages, err := uc.messageRepo.ListMessages(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list messages: %v", err)
		return nil, entity.NewInternalError(errInternalServer, err)
	}
	return messages, nil
}
