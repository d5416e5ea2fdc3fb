package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tour-catalog/internal/authz"
	"tour-catalog/internal/cache"
	"tour-catalog/internal/config"
	"tour-catalog/internal/database"
	"tour-catalog/internal/handler"
	"tour-catalog/internal/imageproc"
	"tour-catalog/internal/mailer"
	"tour-catalog/internal/middleware"
	"tour-catalog/internal/queue"
	"tour-catalog/internal/repository"
	"tour-catalog/internal/router"
	"tour-catalog/internal/service"
	"tour-catalog/internal/storage"
	"tour-catalog/internal/validator"
	"tour-catalog/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title           Tour Catalog API
// @version         1.0
// @description     Catalog of tour packages and nested sub-packages with media, staff accounts and enquiries.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

// cleanupQueueSize is the number of media deletions that may wait for a worker.
const cleanupQueueSize = 256

func main() {
	// Load configuration
	cfg := config.Load()
	logger := newLogger(cfg)
	logger.Info("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// Media store, image normalisation and mail
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL, cfg.S3UseSSL)
	localFiles := storage.NewLocalFiles(cfg.LocalUploadDir)
	images := imageproc.NewProcessor(cfg.ImageMaxWidth)
	smtpMailer := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
		Inbox:    cfg.ContactInbox,
	})

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	packageRepo := repository.NewPackageRepository(mongoDB.Database)
	subPackageRepo := repository.NewSubPackageRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)
	enquiryRepo := repository.NewEnquiryRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(userRepo)

	// Media cleanup queue and processor
	cleanupQueue := queue.NewMemoryQueue(cleanupQueueSize)
	cleanupProcessor := queue.NewProcessor(cleanupQueue, s3Client, localFiles, cfg.CleanupWorkers)

	// Service layer
	subPackageService := service.NewSubPackageService(service.SubPackageServiceConfig{
		PackageRepo:    packageRepo,
		SubPackageRepo: subPackageRepo,
		Media:          s3Client,
		Images:         images,
		Cleanup:        cleanupQueue,
		Cache:          redisCache,
	})
	packageService := service.NewPackageService(packageRepo, redisCache)
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:      userRepo,
		JWTManager:    jwtManager,
		Secrets:       auth.NewSecretGenerator(),
		Mailer:        smtpMailer,
		OTPTTL:        cfg.OTPExpiry,
		ResetTokenTTL: cfg.ResetTokenExpiry,
	})
	userService := service.NewUserService(userRepo)
	enquiryService := service.NewEnquiryService(enquiryRepo, smtpMailer)

	// Router
	r := router.Setup(&router.Config{
		SubPackageHandler:  handler.NewSubPackageHandler(subPackageService),
		PackageHandler:     handler.NewPackageHandler(packageService),
		AuthHandler:        handler.NewAuthHandler(authService),
		UserHandler:        handler.NewUserHandler(userService),
		EnquiryHandler:     handler.NewEnquiryHandler(enquiryService),
		Tokens:             jwtManager,
		Authorizer:         authorizer,
		FormLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerMinute),
		Logger:             logger,
		MaxMultipartMemory: 32 << 20,
		Checks: map[string]func(context.Context) error{
			"mongo": mongoDB.Ping,
			"redis": redisCache.Ping,
		},
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start media cleanup processor
	cleanupProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.WithField("addr", addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown error")
	}

	logger.Info("Waiting for enquiry notifications...")
	enquiryService.Wait()

	// Stop the cleanup processor after the last request has enqueued its work
	logger.Info("Stopping media cleanup processor...")
	cleanupProcessor.Stop()
	cancel()

	logger.Info("Server shutdown complete")
}

// newLogger configures the standard logrus logger, which the rest of the
// application logs through. Release mode logs JSON.
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stdout)

	if cfg.GinMode == gin.ReleaseMode {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
