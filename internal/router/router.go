// Package router sets up HTTP routes for the API.
package router

import (
	"context"
	"net/http"

	_ "tour-catalog/swagger" // Import generated swagger docs

	"tour-catalog/internal/authz"
	"tour-catalog/internal/handler"
	"tour-catalog/internal/middleware"
	"tour-catalog/internal/models"
	"tour-catalog/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	SubPackageHandler *handler.SubPackageHandler
	PackageHandler    *handler.PackageHandler
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	EnquiryHandler    *handler.EnquiryHandler
	Tokens            auth.TokenManager
	Authorizer        authz.Authorizer
	FormLimiter       *middleware.RateLimiter
	Logger            *logrus.Logger
	// Checks are run by the readiness probe, keyed by dependency name.
	Checks map[string]func(context.Context) error
	// MaxMultipartMemory bounds the in-memory part of multipart forms. Zero keeps gin's default.
	MaxMultipartMemory int64
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()
	if cfg.MaxMultipartMemory > 0 {
		r.MaxMultipartMemory = cfg.MaxMultipartMemory
	}

	// Global middleware
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		status, checks := http.StatusOK, gin.H{}
		for name, check := range cfg.Checks {
			if err := check(c.Request.Context()); err != nil {
				checks[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
	})

	requireAuth := middleware.Auth(cfg.Tokens)
	can := func(perm models.Permission) gin.HandlerFunc {
		return middleware.RequirePermission(cfg.Authorizer, perm)
	}
	adminOnly := middleware.RequireAdmin(cfg.Authorizer)
	formLimit := func(c *gin.Context) { c.Next() }
	if cfg.FormLimiter != nil {
		formLimit = cfg.FormLimiter.Limit()
	}

	api := r.Group("/api")
	{
		// Sub-package routes. Static segments are registered alongside
		// :subPackageId, gin prefers them on conflict.
		subPackages := api.Group("/subpackages")
		{
			subPackages.GET("", cfg.SubPackageHandler.GetAllSubPackages)
			subPackages.GET("/deal-of-the-day", cfg.SubPackageHandler.GetDealOfTheDay)
			subPackages.GET("/latest", cfg.SubPackageHandler.GetLatestTourPackages)
			subPackages.GET("/package/:packageId", cfg.SubPackageHandler.GetSubPackagesByPackage)
			subPackages.GET("/:subPackageId", cfg.SubPackageHandler.GetSubPackage)

			subPackages.POST("", requireAuth, can(models.PermCreateSubPackages), cfg.SubPackageHandler.CreateSubPackage)
			subPackages.PUT("/:subPackageId", requireAuth, can(models.PermUpdateSubPackages), cfg.SubPackageHandler.UpdateSubPackage)
			subPackages.DELETE("/:subPackageId", requireAuth, can(models.PermDeleteSubPackages), cfg.SubPackageHandler.DeleteSubPackage)
			subPackages.DELETE("/:subPackageId/gallery/:imageId", requireAuth, can(models.PermUpdateSubPackages), cfg.SubPackageHandler.DeleteGalleryImage)
		}

		// Package routes
		packages := api.Group("/packages")
		{
			packages.GET("", cfg.PackageHandler.ListPackages)
			packages.GET("/:id", cfg.PackageHandler.GetPackage)

			packages.POST("", requireAuth, can(models.PermCreatePackages), cfg.PackageHandler.CreatePackage)
			packages.PUT("/:id", requireAuth, can(models.PermUpdatePackages), cfg.PackageHandler.UpdatePackage)
			packages.DELETE("/:id", requireAuth, can(models.PermDeletePackages), cfg.PackageHandler.DeletePackage)
		}

		// User routes (public)
		users := api.Group("/users")
		{
			users.POST("/login", cfg.AuthHandler.Login)
			users.POST("/request-otp", formLimit, cfg.AuthHandler.RequestOTP)
			users.POST("/verify-otp", formLimit, cfg.AuthHandler.VerifyOTP)
			users.POST("/reset-password", cfg.AuthHandler.ResetPassword)
		}

		// User routes (protected)
		me := api.Group("/users/me")
		me.Use(requireAuth)
		{
			me.GET("", cfg.UserHandler.GetMe)
			me.PUT("/password", cfg.AuthHandler.ChangePassword)
		}

		// User administration (admin)
		admin := api.Group("/users")
		admin.Use(requireAuth, adminOnly)
		{
			admin.GET("", cfg.UserHandler.GetAllUsers)
			admin.POST("", cfg.UserHandler.CreateUser)
			admin.PUT("/:id/permissions", cfg.UserHandler.UpdatePermissions)
			admin.DELETE("/:id", cfg.UserHandler.DeleteUser)
		}

		// Contact and enquiry forms
		api.POST("/contact", formLimit, cfg.EnquiryHandler.Contact)
		enquiries := api.Group("/enquiries")
		{
			enquiries.POST("", formLimit, cfg.EnquiryHandler.CreateEnquiry)
			enquiries.GET("", requireAuth, cfg.EnquiryHandler.ListEnquiries)
			enquiries.DELETE("/:id", requireAuth, adminOnly, cfg.EnquiryHandler.DeleteEnquiry)
		}
	}

	return r
}
