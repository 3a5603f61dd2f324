package contract

import (
	"context"
	"io"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// IAvatarStorage stores doctor pictures outside the database. Upload rejects
// content that is not a PNG, JPEG or WebP image with a validation error.
type IAvatarStorage interface {
	Upload(ctx context.Context, key string, body io.Reader) (*entity.DocAvatar, error)
}
