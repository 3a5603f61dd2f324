package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// ---------- DTO layer ------------------
type revokedTokenDTO struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	TokenHash string    `bson:"token_hash"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func FromRevokedTokenEntityToDTO(t *entity.RevokedToken) *revokedTokenDTO {
	return &revokedTokenDTO{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenHash: t.TokenHash,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
	}
}

// ---------------------------------------

// TokenRepository stores hashes of logged-out session tokens until they
// expire; a TTL index removes them afterwards.
type TokenRepository struct {
	Collection *mongo.Collection
}

// check in compile time if TokenRepository implements ITokenRepository
var _ contract.ITokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(colln *mongo.Collection) *TokenRepository {
	return &TokenRepository{
		Collection: colln,
	}
}

func (r *TokenRepository) RevokeToken(ctx context.Context, token *entity.RevokedToken) error {
	_, err := r.Collection.InsertOne(ctx, FromRevokedTokenEntityToDTO(token))
	if mongo.IsDuplicateKeyError(err) {
		// already logged out
		return nil
	}
	return translate(err, "token not found")
}

func (r *TokenRepository) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"token_hash": tokenHash})
	if err != nil {
		return false, translate(err, "token not found")
	}
	return count > 0, nil
}
