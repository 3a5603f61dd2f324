package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

type messageDTO struct {
	ID        string    `bson:"_id"`
	FirstName string    `bson:"firstName"`
	LastName  string    `bson:"lastName"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (m *messageDTO) ToEntity() *entity.Message {
	return &entity.Message{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

type MessageRepository struct {
	collection *mongo.Collection
}

var _ contract.IMessageRepository = (*MessageRepository)(nil)

func NewMessageRepository(collection *mongo.Collection) *MessageRepository {
	return &MessageRepository{collection: collection}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	_, err := r.collection.InsertOne(ctx, messageDTO{
		ID:        message.ID,
		FirstName: message.FirstName,
		LastName:  message.LastName,
		Email:     message.Email,
		Phone:     message.Phone,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	})
	return translate(err, "message not found")
}

func (r *MessageRepository) ListMessages(ctx context.Context) ([]*entity.Message, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, translate(err, "message not found")
	}
	defer cursor.Close(ctx)

	var dtos []messageDTO
	if err := cursor.All(ctx, &dtos); err != nil {
		return nil, translate(err, "message not found")
	}
	messages := make([]*entity.Message, 0, len(dtos))
	for i := range dtos {
		messages = append(messages, dtos[i].ToEntity())
	}
	return messages, nil
}
