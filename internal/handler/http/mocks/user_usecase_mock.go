package mocks

import (
	"context"
	"errors"

	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool
	ShouldFailLogin        bool
	ShouldFailAddAdmin     bool
	ShouldFailAddDoctor    bool
	ShouldFailListDoctors  bool
	ShouldFailGetByID      bool
	ShouldFailUpdateUser   bool
	ShouldFailLogout       bool
	ShouldFailAuthenticate bool

	// Errors returned when a ShouldFail flag is set; a generic error otherwise
	FailWith error

	// Return values
	MockUser    entity.User
	MockDoctors []*entity.User
	MockToken   string

	// Recorded calls
	LastRegisterInput usecasecontract.RegisterInput
	LastAvatar        *usecasecontract.AvatarFile
	LastPatch         usecasecontract.UserPatch
	LastLoginRole     entity.UserRole
	LoggedOutToken    string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Role:      entity.UserRolePatient,
		},
		MockToken: "mock_session_token",
	}
}

func (m *MockUserUsecase) fail(def string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New(def)
}

func (m *MockUserUsecase) Register(ctx context.Context, role entity.UserRole, in usecasecontract.RegisterInput) (*entity.User, error) {
	m.LastRegisterInput = in
	if m.ShouldFailRegister {
		return nil, m.fail("user creation failed")
	}
	user := m.MockUser
	user.Role = role
	return &user, nil
}

func (m *MockUserUsecase) RegisterPatient(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, string, error) {
	user, err := m.Register(ctx, entity.UserRolePatient, in)
	if err != nil {
		return nil, "", err
	}
	return user, m.MockToken, nil
}

func (m *MockUserUsecase) AddNewAdmin(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, error) {
	m.LastRegisterInput = in
	if m.ShouldFailAddAdmin {
		return nil, m.fail("admin creation failed")
	}
	user := m.MockUser
	user.Role = entity.UserRoleAdmin
	return &user, nil
}

func (m *MockUserUsecase) AddNewDoctor(ctx context.Context, in usecasecontract.RegisterInput, avatar *usecasecontract.AvatarFile) (*entity.User, error) {
	m.LastRegisterInput = in
	m.LastAvatar = avatar
	if m.ShouldFailAddDoctor {
		return nil, m.fail("doctor creation failed")
	}
	user := m.MockUser
	user.Role = entity.UserRoleDoctor
	user.DoctorDepartment = in.DoctorDepartment
	return &user, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password, confirmPassword string, role entity.UserRole) (*entity.User, string, error) {
	m.LastLoginRole = role
	if m.ShouldFailLogin {
		return nil, "", m.fail("login failed")
	}
	user := m.MockUser
	user.Role = role
	return &user, m.MockToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, token string, role entity.UserRole) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, m.fail("authentication failed")
	}
	if token == "" {
		return nil, entity.NewAuthError(string(role) + " Not Authenticated!")
	}
	if m.MockUser.Role != role {
		return nil, entity.NewForbiddenError(string(m.MockUser.Role) + " not authorized for this resource!")
	}
	user := m.MockUser
	return &user, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, token string) error {
	m.LoggedOutToken = token
	if m.ShouldFailLogout {
		return m.fail("logout failed")
	}
	return nil
}

func (m *MockUserUsecase) VerifyPassword(candidate, storedHash string) bool {
	return candidate == storedHash
}

func (m *MockUserUsecase) IssueToken(userID string) (string, error) {
	return m.MockToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, m.fail("user not found")
	}
	user := m.MockUser
	return &user, nil
}

func (m *MockUserUsecase) ListDoctors(ctx context.Context) ([]*entity.User, error) {
	if m.ShouldFailListDoctors {
		return nil, m.fail("list doctors failed")
	}
	return m.MockDoctors, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, patch usecasecontract.UserPatch) (*entity.User, error) {
	m.LastPatch = patch
	if m.ShouldFailUpdateUser {
		return nil, m.fail("update user failed")
	}
	user := m.MockUser
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	return &user, nil
}
