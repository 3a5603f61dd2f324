package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeecare/hms-backend/internal/domain/entity"
	"github.com/zeecare/hms-backend/internal/handler/http/dto"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

type MessageHandler struct {
	messageUsecase usecasecontract.IMessageUseCase
}

func NewMessageHandler(messageUsecase usecasecontract.IMessageUseCase) *MessageHandler {
	return &MessageHandler{messageUsecase: messageUsecase}
}

// SendMessage stores a contact-form message
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req dto.MessageRequest
	if err := Bind(c, &req); err != nil {
		return
	}

	if _, err := h.messageUsecase.Send(c.Request.Context(), req.ToInput()); err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.Ack("Message Sent!"))
}

func (h *MessageHandler) GetAllMessages(c *gin.Context) {
	messages, err := h.messageUsecase.ListAll(c.Request.Context())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	if messages == nil {
		messages = []*entity.Message{}
	}
	SuccessHandler(c, http.StatusOK, dto.MessagesResponse{Success: true, Messages: messages})
}
