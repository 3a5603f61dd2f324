package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

// Constants for common error messages
const (
	errUserNotFound          = "User Not Found!"
	errInternalServer        = "internal server error"
	errInvalidCredentials    = "Invalid Email Or Password!"
	errPasswordMismatch      = "Password & Confirm Password Do Not Match!"
	errFillFullForm          = "Please Fill Full Form!"
	errDoctorAvatarRequired  = "Doctor Avatar Required!"
	errDoctorDepartment      = "Doctor Department Is Required!"
	errInvalidDOB            = "DOB must be a valid date!"
	errSessionLoggedOut      = "Session has been logged out, please log in again!"
	errRoleMismatchOnLogin   = "User Not Found With This Role!"
	errPasswordTooLong       = "Password Must Not Exceed 72 Bytes!"
	errLoginRole             = "Only Admins And Patients Can Log In!"
	fieldDOB                 = "dob"
	fieldDoctorDepartment    = "doctorDepartment"
	fieldPassword            = "password"
	doctorAvatarKeyDirectory = "doctors"

	// bcrypt refuses longer inputs
	maxPasswordBytes = 72
)

// UserUsecase is the credential store: it owns user records, password
// hashing and session token issuance.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	tokenRepo     contract.ITokenRepository
	hasher        contract.IHasher
	jwtService    JWTService
	avatarStore   contract.IAvatarStorage
	doctorCache   contract.IDoctorCache
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	avatarStore contract.IAvatarStorage,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		avatarStore:   avatarStore,
		logger:        logger,
		config:        cfg,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// SetDoctorCache enables caching of the doctor listing.
func (uc *UserUsecase) SetDoctorCache(cache contract.IDoctorCache) {
	uc.doctorCache = cache
}

// Register validates and stores a new account with the given role.
func (uc *UserUsecase) Register(ctx context.Context, role entity.UserRole, in usecasecontract.RegisterInput) (*entity.User, error) {
	user, err := uc.newUser(role, in)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureEmailFree(ctx, user.Email, "", role); err != nil {
		return nil, err
	}
	if err := uc.persistNew(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterPatient signs up a patient and opens a session for them.
func (uc *UserUsecase) RegisterPatient(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, string, error) {
	user, err := uc.Register(ctx, entity.UserRolePatient, in)
	if err != nil {
		return nil, "", err
	}
	token, err := uc.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// AddNewAdmin creates another administrator account.
func (uc *UserUsecase) AddNewAdmin(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, error) {
	return uc.Register(ctx, entity.UserRoleAdmin, in)
}

// AddNewDoctor creates a doctor account and stores the doctor's avatar.
func (uc *UserUsecase) AddNewDoctor(ctx context.Context, in usecasecontract.RegisterInput, avatar *usecasecontract.AvatarFile) (*entity.User, error) {
	if avatar == nil || avatar.Open == nil {
		return nil, entity.NewBadRequestError(errDoctorAvatarRequired)
	}
	user, err := uc.newUser(entity.UserRoleDoctor, in)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureEmailFree(ctx, user.Email, "", entity.UserRoleDoctor); err != nil {
		return nil, err
	}

	body, err := avatar.Open()
	if err != nil {
		uc.logger.Errorf("failed to open doctor avatar %s: %v", avatar.FileName, err)
		return nil, entity.NewInternalError("failed to read avatar", err)
	}
	defer body.Close()

	key := path.Join(doctorAvatarKeyDirectory, user.ID+strings.ToLower(path.Ext(avatar.FileName)))
	docAvatar, err := uc.avatarStore.Upload(ctx, key, body)
	if err != nil {
		if entity.KindOf(err) == entity.KindValidation {
			return nil, err
		}
		uc.logger.Errorf("failed to upload doctor avatar for %s: %v", user.Email, err)
		return nil, entity.NewInternalError("Failed To Upload Doctor Avatar", err)
	}
	user.DocAvatar = docAvatar

	if err := uc.persistNew(ctx, user); err != nil {
		return nil, err
	}
	uc.invalidateDoctors(ctx)
	return user, nil
}

// Login checks credentials and the requested role and issues a session token.
// Only admins and patients sign in.
func (uc *UserUsecase) Login(ctx context.Context, email, password, confirmPassword string, role entity.UserRole) (*entity.User, string, error) {
	if email == "" || password == "" || confirmPassword == "" || role == "" {
		return nil, "", entity.NewBadRequestError(errFillFullForm)
	}
	if password != confirmPassword {
		return nil, "", entity.NewBadRequestError(errPasswordMismatch)
	}
	// doctors hold no session cookie
	if role != entity.UserRoleAdmin && role != entity.UserRolePatient {
		return nil, "", entity.NewBadRequestError(errLoginRole)
	}

	user, err := uc.userRepo.GetUserWithPassword(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, "", entity.NewAuthError(errInvalidCredentials)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", entity.NewInternalError(errInternalServer, err)
	}

	if !uc.VerifyPassword(password, user.Password) {
		return nil, "", entity.NewAuthError(errInvalidCredentials)
	}
	if user.Role != role {
		return nil, "", entity.NewAuthError(errRoleMismatchOnLogin)
	}

	token, err := uc.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	user.Password = ""
	return user, token, nil
}

// Authenticate resolves a session token to its user and checks the role.
func (uc *UserUsecase) Authenticate(ctx context.Context, token string, role entity.UserRole) (*entity.User, error) {
	if token == "" {
		return nil, entity.NewAuthError(fmt.Sprintf("%s Not Authenticated!", role))
	}
	claims, err := uc.jwtService.ParseToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := uc.tokenRepo.IsRevoked(ctx, uc.hasher.HashString(token))
	if err != nil {
		uc.logger.Errorf("failed to check token revocation for user %s: %v", claims.UserID, err)
		return nil, entity.NewInternalError(errInternalServer, err)
	}
	if revoked {
		return nil, entity.NewAuthError(errSessionLoggedOut)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.NewAuthError(errUserNotFound)
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, entity.NewInternalError(errInternalServer, err)
	}
	if user.Role != role {
		return nil, entity.NewForbiddenError(fmt.Sprintf("%s not authorized for this resource!", user.Role))
	}
	return user, nil
}

// Logout revokes a session token for the rest of its lifetime.
func (uc *UserUsecase) Logout(ctx context.Context, token string) error {
	claims, err := uc.jwtService.ParseToken(token)
	if err != nil {
		uc.logger.Warnf("failed to parse session token on logout, assuming it's already invalid: %v", err)
		return nil
	}

	expiresAt := time.Now().Add(uc.config.GetJWTExpiry())
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	revoked := &entity.RevokedToken{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    claims.UserID,
		TokenHash: uc.hasher.HashString(token),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if err := uc.tokenRepo.RevokeToken(ctx, revoked); err != nil {
		uc.logger.Errorf("failed to revoke session token for user %s: %v", claims.UserID, err)
		return entity.NewInternalError("failed to revoke token", err)
	}
	return nil
}

// VerifyPassword reports whether candidate is the password behind storedHash.
func (uc *UserUsecase) VerifyPassword(candidate, storedHash string) bool {
	return uc.hasher.ComparePasswordHash(candidate, storedHash) == nil
}

// IssueToken signs a session token carrying userID.
func (uc *UserUsecase) IssueToken(userID string) (string, error) {
	token, err := uc.jwtService.GenerateToken(userID)
	if err != nil {
		uc.logger.Errorf("failed to generate token for user %s: %v", userID, err)
		return "", entity.NewInternalError("failed to generate token", err)
	}
	return token, nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.NewNotFoundError(errUserNotFound)
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, entity.NewInternalError(errInternalServer, err)
	}
	return user, nil
}

// ListDoctors returns every doctor, served from the cache when one is configured.
func (uc *UserUsecase) ListDoctors(ctx context.Context) ([]*entity.User, error) {
	if uc.doctorCache != nil {
		doctors, ok, err := uc.doctorCache.GetDoctors(ctx)
		if err != nil {
			uc.logger.Warnf("doctor cache read failed: %v", err)
		} else if ok {
			return doctors, nil
		}
	}

	doctors, err := uc.userRepo.FindUsers(ctx, contract.UserFilter{Role: entity.UserRoleDoctor})
	if err != nil {
		uc.logger.Errorf("failed to list doctors: %v", err)
		return nil, entity.NewInternalError(errInternalServer, err)
	}

	if uc.doctorCache != nil {
		if err := uc.doctorCache.SetDoctors(ctx, doctors); err != nil {
			uc.logger.Warnf("doctor cache write failed: %v", err)
		}
	}
	return doctors, nil
}

// UpdateProfile applies patch to the stored user. The password is re-hashed
// only when the patch carries a password that the stored hash does not
// already match; every other save leaves the stored hash untouched.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, patch usecasecontract.UserPatch) (*entity.User, error) {
	stored, err := uc.userRepo.GetUserWithPasswordByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.NewNotFoundError(errUserNotFound)
		}
		uc.logger.Errorf("failed to retrieve user for profile update: %v", err)
		return nil, entity.NewInternalError(errInternalServer, err)
	}

	updated := *stored
	applyUserPatch(&updated, patch)

	passwordChanged := patch.Password != nil && !uc.VerifyPassword(*patch.Password, stored.Password)
	if passwordChanged {
		updated.Password = *patch.Password
	} else {
		updated.Password = stored.Password
	}

	dobRaw := ""
	if patch.DOB != nil {
		dobRaw = *patch.DOB
		updated.DOB, _ = entity.ParseDate(dobRaw)
	}
	if err := uc.validate(&updated, dobRaw); err != nil {
		return nil, err
	}
	if updated.Email != stored.Email {
		if err := uc.ensureEmailFree(ctx, updated.Email, updated.ID, updated.Role); err != nil {
			return nil, err
		}
	}

	if passwordChanged {
		hashed, err := uc.hasher.HashPassword(ctx, updated.Password)
		if err != nil {
			uc.logger.Errorf("failed to hash password: %v", err)
			return nil, entity.NewInternalError("failed to process password", err)
		}
		updated.Password = hashed
	}

	updated.UpdatedAt = time.Now()
	if err := uc.userRepo.UpdateUser(ctx, &updated); err != nil {
		if entity.KindOf(err) == entity.KindConflict {
			return nil, err
		}
		uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		return nil, entity.NewInternalError("failed to update profile", err)
	}
	if updated.Role == entity.UserRoleDoctor {
		uc.invalidateDoctors(ctx)
	}

	updated.Password = ""
	return &updated, nil
}

func (uc *UserUsecase) newUser(role entity.UserRole, in usecasecontract.RegisterInput) (*entity.User, error) {
	now := time.Now()
	dob, _ := entity.ParseDate(in.DOB)
	user := &entity.User{
		ID:               uc.uuidGenerator.NewUUID(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		NIC:              in.NIC,
		DOB:              dob,
		Gender:           entity.Gender(in.Gender),
		Password:         in.Password,
		Role:             role,
		DoctorDepartment: in.DoctorDepartment,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.validate(user, in.DOB); err != nil {
		return nil, err
	}
	return user, nil
}

// validate collects every violated constraint of user. dobRaw is the date as
// submitted, so an unparseable date is reported as such rather than missing.
func (uc *UserUsecase) validate(user *entity.User, dobRaw string) error {
	verr := &entity.ValidationError{}
	if err := uc.validator.ValidateStruct(user); err != nil {
		if !errors.As(err, &verr) {
			return entity.NewInternalError(errInternalServer, err)
		}
	}
	if dobRaw != "" {
		if _, ok := entity.ParseDate(dobRaw); !ok {
			verr.Set(fieldDOB, errInvalidDOB)
		}
	}
	if len(user.Password) > maxPasswordBytes {
		verr.Set(fieldPassword, errPasswordTooLong)
	}
	if user.Role == entity.UserRoleDoctor && strings.TrimSpace(user.DoctorDepartment) == "" {
		verr.Set(fieldDoctorDepartment, errDoctorDepartment)
	}
	return verr.OrNil()
}

// ensureEmailFree fails with a conflict when another account uses email.
func (uc *UserUsecase) ensureEmailFree(ctx context.Context, email, selfID string, role entity.UserRole) error {
	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return entity.NewInternalError(errInternalServer, err)
	}
	if existing != nil && existing.ID != selfID {
		return entity.NewConflictError(alreadyRegisteredMessage(role))
	}
	return nil
}

// persistNew hashes the plaintext password of a new record and stores it.
// On success user no longer carries any password material.
func (uc *UserUsecase) persistNew(ctx context.Context, user *entity.User) error {
	hashed, err := uc.hasher.HashPassword(ctx, user.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return entity.NewInternalError("failed to process password", err)
	}
	user.Password = hashed

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if entity.KindOf(err) == entity.KindConflict {
			return entity.NewConflictError(alreadyRegisteredMessage(user.Role))
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return entity.NewInternalError("failed to register user", err)
	}
	user.Password = ""
	return nil
}

func (uc *UserUsecase) invalidateDoctors(ctx context.Context) {
	if uc.doctorCache == nil {
		return
	}
	if err := uc.doctorCache.InvalidateDoctors(ctx); err != nil {
		uc.logger.Warnf("doctor cache invalidation failed: %v", err)
	}
}

func applyUserPatch(user *entity.User, patch usecasecontract.UserPatch) {
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.NIC != nil {
		user.NIC = *patch.NIC
	}
	if patch.Gender != nil {
		user.Gender = entity.Gender(*patch.Gender)
	}
	if patch.DoctorDepartment != nil {
		user.DoctorDepartment = *patch.DoctorDepartment
	}
}

func alreadyRegisteredMessage(role entity.UserRole) string {
	switch role {
	case entity.UserRoleAdmin:
		return "Admin With This Email Already Exists!"
	case entity.UserRoleDoctor:
		return "Doctor With This Email Already Exists!"
	default:
		return "User already Registered!"
	}
}

func isNotFound(err error) bool {
	return entity.KindOf(err) == entity.KindNotFound
}
