package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeecare/hms-backend/internal/domain/entity"
	"github.com/zeecare/hms-backend/internal/handler/http/dto"
	"github.com/zeecare/hms-backend/internal/handler/http/middleware"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	RegisterPatient(*gin.Context)
	Login(*gin.Context)
	AddNewAdmin(*gin.Context)
	AddNewDoctor(*gin.Context)
	GetDoctors(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateCurrentUser(*gin.Context)
	LogoutAdmin(*gin.Context)
	LogoutPatient(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

// CookieSettings controls the session cookies set on login.
type CookieSettings struct {
	MaxAge time.Duration
	Secure bool
}

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	cookies     CookieSettings
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, cookies CookieSettings) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		cookies:     cookies,
	}
}

// RegisterPatient handles patient sign-up and opens a patient session
func (h *UserHandler) RegisterPatient(c *gin.Context) {
	var req dto.RegisterRequest
	if err := Bind(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.RegisterPatient(c.Request.Context(), req.ToInput())
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	h.setSession(c, middleware.PatientCookie, token)
	SuccessHandler(c, http.StatusOK, dto.AuthResponse{Success: true, Message: "User Registered!", User: user, Token: token})
}

// Login handles authentication for every role
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := Bind(c, &req); err != nil {
		return
	}

	role := entity.UserRole(req.Role)
	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password, req.ConfirmPassword, role)
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	cookie := middleware.PatientCookie
	if user.Role == entity.UserRoleAdmin {
		cookie = middleware.AdminCookie
	}
	h.setSession(c, cookie, token)
	SuccessHandler(c, http.StatusOK, dto.AuthResponse{Success: true, Message: "User Logged In Successfully!", User: user, Token: token})
}

// AddNewAdmin lets an admin create another admin
func (h *UserHandler) AddNewAdmin(c *gin.Context) {
	var req dto.RegisterRequest
	if err := Bind(c, &req); err != nil {
		return
	}

	admin, err := h.userUsecase.AddNewAdmin(c.Request.Context(), req.ToInput())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserResponse{Success: true, Message: "New Admin Registered!", User: admin})
}

// AddNewDoctor lets an admin create a doctor from a multipart form with a docAvatar file
func (h *UserHandler) AddNewDoctor(c *gin.Context) {
	upload, ok := middleware.UploadedFiles(c)["docAvatar"]
	if !ok {
		ErrorHandler(c, entity.NewBadRequestError("Doctor Avatar Required!"))
		return
	}

	var req dto.RegisterRequest
	if err := Bind(c, &req); err != nil {
		return
	}

	doctor, err := h.userUsecase.AddNewDoctor(c.Request.Context(), req.ToInput(), upload.AvatarFile())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserResponse{Success: true, Message: "New Doctor Registered!", User: doctor})
}

// GetDoctors lists every doctor
func (h *UserHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.userUsecase.ListDoctors(c.Request.Context())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	if doctors == nil {
		doctors = []*entity.User{}
	}
	SuccessHandler(c, http.StatusOK, dto.DoctorsResponse{Success: true, Doctors: doctors})
}

// GetCurrentUser returns the user admitted by the auth stage
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, entity.NewAuthError("User Not Authenticated!"))
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserResponse{Success: true, User: user})
}

// UpdateCurrentUser changes the profile, password included, of the current user
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, entity.NewAuthError("User Not Authenticated!"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := Bind(c, &req); err != nil {
		return
	}

	updated, err := h.userUsecase.UpdateProfile(c.Request.Context(), user.ID, req.ToPatch())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserResponse{Success: true, Message: "Profile Updated!", User: updated})
}

func (h *UserHandler) LogoutAdmin(c *gin.Context) {
	h.logout(c, middleware.AdminCookie, "Admin Logged Out Successfully.")
}

func (h *UserHandler) LogoutPatient(c *gin.Context) {
	h.logout(c, middleware.PatientCookie, "Patient Logged Out Successfully.")
}

func (h *UserHandler) logout(c *gin.Context, cookie, message string) {
	if err := h.userUsecase.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		ErrorHandler(c, err)
		return
	}
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cookie, "", -1, "/", "", h.cookies.Secure, true)
	SuccessHandler(c, http.StatusOK, dto.Ack(message))
}

func (h *UserHandler) setSession(c *gin.Context, cookie, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cookie, token, int(h.cookies.MaxAge.Seconds()), "/", "", h.cookies.Secure, true)
}
