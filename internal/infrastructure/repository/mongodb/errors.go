package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// translate maps driver errors onto the domain taxonomy.
func translate(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return entity.NewNotFoundError(notFound)
	case mongo.IsDuplicateKeyError(err):
		return &entity.AppError{Kind: entity.KindConflict, Message: "duplicate key", Err: err}
	case mongo.IsNetworkError(err) || mongo.IsTimeout(err):
		return entity.NewConnectionError("database unavailable", err)
	}
	return err
}
