package avatar

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// DiskStore keeps doctor avatars below a local directory. Used when no
// bucket is configured.
type DiskStore struct {
	root       string
	publicBase string
}

var _ contract.IAvatarStorage = (*DiskStore)(nil)

func NewDiskStore(root, publicBase string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir: %w", err)
	}
	return &DiskStore{root: filepath.Clean(root), publicBase: strings.TrimSuffix(publicBase, "/")}, nil
}

func (s *DiskStore) Upload(ctx context.Context, key string, body io.Reader) (*entity.DocAvatar, error) {
	target, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	if _, content, err := sniff(body); err != nil {
		return nil, err
	} else {
		body = content
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, entity.NewInternalError("avatar upload failed", err)
	}
	f, err := os.Create(target)
	if err != nil {
		return nil, entity.NewInternalError("avatar upload failed", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(target)
		return nil, entity.NewInternalError("avatar upload failed", err)
	}
	if err := f.Close(); err != nil {
		return nil, entity.NewInternalError("avatar upload failed", err)
	}

	return &entity.DocAvatar{PublicID: key, URL: s.publicBase + "/" + key}, nil
}

// resolve maps key onto a file below root, refusing keys that escape it.
func (s *DiskStore) resolve(key string) (string, error) {
	cleanKey := strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(key)), "/")
	if cleanKey == "" {
		return "", entity.NewBadRequestError("invalid avatar key")
	}
	target := filepath.Join(s.root, filepath.FromSlash(cleanKey))
	if !strings.HasPrefix(target, s.root+string(os.PathSeparator)) {
		return "", entity.NewBadRequestError("invalid avatar key")
	}
	return target, nil
}
