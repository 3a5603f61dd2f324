package contract

import (
	"context"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// IDoctorCache caches the public doctor listing.
type IDoctorCache interface {
	GetDoctors(ctx context.Context) ([]*entity.User, bool, error)
	SetDoctors(ctx context.Context, doctors []*entity.User) error
	InvalidateDoctors(ctx context.Context) error
}
