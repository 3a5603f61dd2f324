package usecasecontract

import (
	"context"
	"io"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	NIC              string
	DOB              string
	Gender           string
	Password         string
	DoctorDepartment string
}

// UserPatch lists profile changes; nil fields stay as stored.
type UserPatch struct {
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	NIC              *string
	DOB              *string
	Gender           *string
	Password         *string
	DoctorDepartment *string
}

// AvatarFile is an uploaded picture waiting to be stored.
type AvatarFile struct {
	FileName string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

type IUserUseCase interface {
	Register(ctx context.Context, role entity.UserRole, in RegisterInput) (*entity.User, error)
	RegisterPatient(ctx context.Context, in RegisterInput) (*entity.User, string, error)
	AddNewAdmin(ctx context.Context, in RegisterInput) (*entity.User, error)
	AddNewDoctor(ctx context.Context, in RegisterInput, avatar *AvatarFile) (*entity.User, error)
	Login(ctx context.Context, email, password, confirmPassword string, role entity.UserRole) (*entity.User, string, error)
	Authenticate(ctx context.Context, token string, role entity.UserRole) (*entity.User, error)
	Logout(ctx context.Context, token string) error
	VerifyPassword(candidate, storedHash string) bool
	IssueToken(userID string) (string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	ListDoctors(ctx context.Context) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, patch UserPatch) (*entity.User, error)
}
