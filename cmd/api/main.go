package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	handlerHttp "github.com/zeecare/hms-backend/internal/handler/http"
	"github.com/zeecare/hms-backend/internal/infrastructure/avatar"
	redisclient "github.com/zeecare/hms-backend/internal/infrastructure/cache"
	"github.com/zeecare/hms-backend/internal/infrastructure/config"
	database "github.com/zeecare/hms-backend/internal/infrastructure/database"
	"github.com/zeecare/hms-backend/internal/infrastructure/external_services"
	"github.com/zeecare/hms-backend/internal/infrastructure/jwt"
	"github.com/zeecare/hms-backend/internal/infrastructure/logger"
	passwordservice "github.com/zeecare/hms-backend/internal/infrastructure/password_service"
	"github.com/zeecare/hms-backend/internal/infrastructure/repository/mongodb"
	"github.com/zeecare/hms-backend/internal/infrastructure/store"
	"github.com/zeecare/hms-backend/internal/infrastructure/uuidgen"
	"github.com/zeecare/hms-backend/internal/infrastructure/validator"
	"github.com/zeecare/hms-backend/internal/usecase"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

const shutdownTimeout = 15 * time.Second

func main() {
	os.Exit(run())
}

// run wires and serves the application. Returning instead of exiting lets
// deferred cleanup close the database and cache connections.
func run() int {
	// Configuration is read once; nothing reads the environment afterwards
	appConfig, err := config.Load()
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}
	appLogger := logger.NewStdLogger(appConfig.Debug)
	if !appConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		appLogger.Errorf("Failed to connect to MongoDB: %v", err)
		return 1
	}
	defer func() {
		if err := mongoClient.Disconnect(); err != nil {
			appLogger.Warnf("MongoDB disconnect: %v", err)
		}
	}()
	appLogger.Infof("Connected to MongoDB database %s", appConfig.MongoDBName)

	db := mongoClient.Database(appConfig.MongoDBName)
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.EnsureIndexes(indexCtx, db)
	cancelIndexes()
	if err != nil {
		appLogger.Errorf("Failed to ensure indexes: %v", err)
		return 1
	}

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection(database.UsersCollection))
	tokenRepo := mongodb.NewTokenRepository(db.Collection(database.RevokedTokensCollection))
	appointmentRepo := mongodb.NewAppointmentRepository(db.Collection(database.AppointmentsCollection))
	messageRepo := mongodb.NewMessageRepository(db.Collection(database.MessagesCollection))

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.JWTExpiry)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	avatarStore, err := newAvatarStore(appConfig)
	if err != nil {
		appLogger.Errorf("Failed to initialise avatar storage: %v", err)
		return 1
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, tokenRepo, hasher, jwtService, avatarStore, appLogger, appConfig, appValidator, uuidGenerator)
	appointmentUsecase := usecase.NewAppointmentUsecase(appointmentRepo, userRepo, appLogger, appValidator, uuidGenerator)
	messageUsecase := usecase.NewMessageUsecase(messageRepo, appLogger, appValidator, uuidGenerator)

	if mailer := external_services.NewSMTPMailer(appConfig.Email); mailer != nil {
		appointmentUsecase.SetMailService(mailer)
	}

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		if err != nil {
			appLogger.Warnf("Doctor cache disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			userUsecase.SetDoctorCache(store.NewDoctorCacheStore(rdb, appConfig.GetDoctorCacheTTL()))
		}
	}

	// Setup API routes
	router := gin.New()
	appRouter := handlerHttp.NewRouter(userUsecase, appointmentUsecase, messageUsecase, appConfig, appLogger)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return serve(srv, quit, appLogger)
}

// serve runs srv until it fails or quit fires, then shuts it down gracefully.
// Listen failures are returned to the caller rather than exiting here.
func serve(srv *http.Server, quit <-chan os.Signal, appLogger usecasecontract.IAppLogger) int {
	serveErr := make(chan error, 1)
	go func() {
		appLogger.Infof("Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		appLogger.Errorf("Failed to start server: %v", err)
		return 1
	case <-quit:
	}
	appLogger.Infof("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorf("Server forced to shutdown: %v", err)
		return 1
	}
	return 0
}

func newAvatarStore(cfg *config.Config) (contract.IAvatarStorage, error) {
	if cfg.AvatarBucket != "" {
		return avatar.NewS3Store(cfg.AWSRegion, cfg.AvatarBucket, cfg.AvatarPublicBaseURL)
	}
	base := cfg.AvatarPublicBaseURL
	if base == "" {
		base = handlerHttp.LocalAvatarPath
	}
	return avatar.NewDiskStore(cfg.AvatarLocalDir, base)
}
