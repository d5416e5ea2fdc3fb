//go:build api

// Package testserver provides a fully wired catalog server for API tests.
package testserver

import (
	"context"
	"time"

	"tour-catalog/internal/authz"
	"tour-catalog/internal/cache"
	"tour-catalog/internal/handler"
	"tour-catalog/internal/imageproc"
	"tour-catalog/internal/middleware"
	"tour-catalog/internal/queue"
	"tour-catalog/internal/repository"
	"tour-catalog/internal/router"
	"tour-catalog/internal/service"
	"tour-catalog/internal/storage"
	"tour-catalog/pkg/auth"
	"tour-catalog/test/api/testdb"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestOTPExpiry is how long a password reset code stays valid.
	TestOTPExpiry = 10 * time.Minute
	// TestResetTokenExpiry is how long a reset token stays valid.
	TestResetTokenExpiry = 15 * time.Minute
	// TestFormRateLimit is the per-minute allowance of the public forms.
	TestFormRateLimit = 1000
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestImageMaxWidth is the width uploads are scaled down to.
	TestImageMaxWidth = 800
)

// TestServer holds all dependencies for API tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	PackageRepo    repository.PackageRepository
	SubPackageRepo repository.SubPackageRepository
	UserRepo       repository.UserRepository
	EnquiryRepo    repository.EnquiryRepository

	// Services (for seeding through the write path)
	UserService       service.UserServicer
	PackageService    service.PackageServicer
	SubPackageService service.SubPackageServicer
	EnquiryService    *service.EnquiryService

	// Auth
	JWTManager *auth.JWTManager

	// Outbox records every e-mail the API sends.
	Outbox *Outbox

	// Media cleanup
	CleanupQueue     *queue.MemoryQueue
	CleanupProcessor *queue.Processor
	media            *storage.S3Client
}

// New starts the containers and wires the same stack as cmd/server.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	redisCache := cache.NewRedisFromClient(redisContainer.Client)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		"",    // publicURL: fall back to the bucket URL
		false, // useSSL
	)
	outbox := NewOutbox()
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	// Repository layer
	packageRepo := repository.NewPackageRepository(mongoDB.Database)
	subPackageRepo := repository.NewSubPackageRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)
	enquiryRepo := repository.NewEnquiryRepository(mongoDB.Database)

	// Cleanup workers are started only by the tests that assert on deletions.
	cleanupQueue := queue.NewMemoryQueue(100)

	// Service layer
	subPackageService := service.NewSubPackageService(service.SubPackageServiceConfig{
		PackageRepo:    packageRepo,
		SubPackageRepo: subPackageRepo,
		Media:          s3Client,
		Images:         imageproc.NewProcessor(TestImageMaxWidth),
		Cleanup:        cleanupQueue,
		Cache:          redisCache,
	})
	packageService := service.NewPackageService(packageRepo, redisCache)
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:      userRepo,
		JWTManager:    jwtManager,
		Secrets:       auth.NewSecretGenerator(),
		Mailer:        outbox,
		OTPTTL:        TestOTPExpiry,
		ResetTokenTTL: TestResetTokenExpiry,
	})
	userService := service.NewUserService(userRepo)
	enquiryService := service.NewEnquiryService(enquiryRepo, outbox)

	r := router.Setup(&router.Config{
		SubPackageHandler: handler.NewSubPackageHandler(subPackageService),
		PackageHandler:    handler.NewPackageHandler(packageService),
		AuthHandler:       handler.NewAuthHandler(authService),
		UserHandler:       handler.NewUserHandler(userService),
		EnquiryHandler:    handler.NewEnquiryHandler(enquiryService),
		Tokens:            jwtManager,
		Authorizer:        authz.NewLocalAuthorizer(userRepo),
		FormLimiter:       middleware.NewRateLimiter(TestFormRateLimit),
		Logger:            logrus.StandardLogger(),
		Checks: map[string]func(context.Context) error{
			"mongo": func(ctx context.Context) error { return mongoDB.Client.Ping(ctx, nil) },
			"redis": redisCache.Ping,
		},
	})

	return &TestServer{
		Router:            r,
		MongoDB:           mongoDB,
		Redis:             redisContainer,
		MinIO:             minioContainer,
		PackageRepo:       packageRepo,
		SubPackageRepo:    subPackageRepo,
		UserRepo:          userRepo,
		EnquiryRepo:       enquiryRepo,
		UserService:       userService,
		PackageService:    packageService,
		SubPackageService: subPackageService,
		EnquiryService:    enquiryService,
		JWTManager:        jwtManager,
		Outbox:            outbox,
		CleanupQueue:      cleanupQueue,
		CleanupProcessor:  queue.NewProcessor(cleanupQueue, s3Client, nil, 2),
		media:             s3Client,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartCleanupProcessor starts the media cleanup workers.
func (ts *TestServer) StartCleanupProcessor(ctx context.Context) {
	ts.CleanupProcessor.Start(ctx)
}

// StopCleanupProcessor drains the cleanup queue and leaves a fresh processor
// behind so later tests can start it again.
func (ts *TestServer) StopCleanupProcessor() {
	ts.CleanupProcessor.Stop()
	ts.CleanupQueue.Reset()
	ts.CleanupProcessor = queue.NewProcessor(ts.CleanupQueue, ts.media, nil, 2)
}
