package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zeecare/hms-backend/internal/handler/http/middleware"
	"github.com/zeecare/hms-backend/internal/infrastructure/config"
	"github.com/zeecare/hms-backend/internal/infrastructure/metrics"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

// LocalAvatarPath is where avatars kept on local disk are served from.
const LocalAvatarPath = "/avatars"

type Router struct {
	userHandler        *UserHandler
	appointmentHandler *AppointmentHandler
	messageHandler     *MessageHandler
	spaHandler         *SPAHandler
	authenticator      middleware.Authenticator
	pipeline           *middleware.Pipeline
	rateLimit          gin.HandlerFunc
	avatarDir          string
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	appointmentUsecase usecasecontract.IAppointmentUseCase,
	messageUsecase usecasecontract.IMessageUseCase,
	cfg *config.Config,
	logger usecasecontract.IAppLogger,
) *Router {
	return &Router{
		userHandler:        NewUserHandler(userUsecase, CookieSettings{MaxAge: cfg.GetCookieExpiry(), Secure: cfg.CookieSecure}),
		appointmentHandler: NewAppointmentHandler(appointmentUsecase),
		messageHandler:     NewMessageHandler(messageUsecase),
		spaHandler:         NewSPAHandler(cfg.FrontendDist, cfg.DashboardDist),
		authenticator:      userUsecase,
		pipeline:           NewPipeline(cfg, logger),
		rateLimit:          middleware.RateLimiter(cfg.RateLimitPerSecond),
		avatarDir:          localAvatarDir(cfg),
	}
}

func localAvatarDir(cfg *config.Config) string {
	if cfg.AvatarBucket != "" {
		return ""
	}
	return cfg.AvatarLocalDir
}

// NewPipeline returns the stages every request passes before routing, in order.
func NewPipeline(cfg *config.Config, logger usecasecontract.IAppLogger) *middleware.Pipeline {
	return middleware.NewPipeline(
		middleware.Stage{Name: "recovery", Handler: gin.Recovery()},
		middleware.Stage{Name: "logger", Handler: gin.Logger()},
		middleware.Stage{Name: "metrics", Handler: metrics.Middleware()},
		middleware.Stage{Name: "errors", Handler: middleware.ErrorMiddleware(logger)},
		middleware.Stage{Name: "cors", Handler: middleware.CORS(cfg.AllowedOrigins())},
		middleware.Stage{Name: "cookies", Handler: middleware.CookieParser()},
		middleware.Stage{Name: "json", Handler: middleware.JSONBody(cfg.MaxUploadBytes)},
		middleware.Stage{Name: "urlencoded", Handler: middleware.URLEncoded()},
		middleware.Stage{Name: "upload", Handler: middleware.FileUpload(cfg.UploadTempDir, cfg.MaxUploadBytes, logger)},
	)
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	r.pipeline.Mount(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if r.avatarDir != "" {
		router.Static(LocalAvatarPath, r.avatarDir)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(r.rateLimit)

	adminOnly := middleware.AdminAuth(r.authenticator)
	patientOnly := middleware.PatientAuth(r.authenticator)

	message := v1.Group("/message")
	{
		message.POST("/send", r.messageHandler.SendMessage)
		message.GET("/getall", adminOnly, r.messageHandler.GetAllMessages)
	}

	user := v1.Group("/user")
	{
		user.POST("/patient/register", r.userHandler.RegisterPatient)
		user.POST("/login", r.userHandler.Login)
		user.GET("/doctors", r.userHandler.GetDoctors)

		user.POST("/admin/addnew", adminOnly, r.userHandler.AddNewAdmin)
		user.POST("/doctor/addnew", adminOnly, r.userHandler.AddNewDoctor)
		user.GET("/admin/me", adminOnly, r.userHandler.GetCurrentUser)
		user.PUT("/admin/me", adminOnly, r.userHandler.UpdateCurrentUser)
		user.GET("/admin/logout", adminOnly, r.userHandler.LogoutAdmin)

		user.GET("/patient/me", patientOnly, r.userHandler.GetCurrentUser)
		user.PUT("/patient/me", patientOnly, r.userHandler.UpdateCurrentUser)
		user.GET("/patient/logout", patientOnly, r.userHandler.LogoutPatient)
	}

	appointment := v1.Group("/appointment")
	{
		appointment.POST("/post", patientOnly, r.appointmentHandler.PostAppointment)
		appointment.GET("/getall", adminOnly, r.appointmentHandler.GetAllAppointments)
		appointment.PUT("/update/:id", adminOnly, r.appointmentHandler.UpdateAppointmentStatus)
		appointment.DELETE("/delete/:id", adminOnly, r.appointmentHandler.DeleteAppointment)
	}

	router.NoRoute(r.spaHandler.Handle)
}
