// Package service contains business logic for the application.
package service

import (
	"context"

	"tour-catalog/internal/models"
)

// SubPackageServicer defines the catalog write and read operations.
type SubPackageServicer interface {
	CreateSubPackage(ctx context.Context, req *models.SubPackageRequest, files SubPackageFiles) (*models.SubPackage, error)
	UpdateSubPackage(ctx context.Context, id string, req *models.SubPackageRequest, files SubPackageFiles) (*models.SubPackage, error)
	DeleteSubPackage(ctx context.Context, id string) error
	DeleteGalleryImage(ctx context.Context, subPackageID, imageID string) error
	ListByParent(ctx context.Context, packageID string) ([]models.SubPackage, error)
	GetSubPackage(ctx context.Context, id string) (*models.SubPackage, error)
	ListAll(ctx context.Context) ([]models.SubPackage, error)
	GetDealsOfTheDay(ctx context.Context) ([]models.SubPackage, error)
	GetLatest(ctx context.Context, limit int) ([]models.SubPackage, error)
}

// PackageServicer defines the interface for package operations.
type PackageServicer interface {
	CreatePackage(ctx context.Context, req *models.CreatePackageRequest) (*models.Package, error)
	ListPackages(ctx context.Context) ([]models.Package, error)
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	UpdatePackage(ctx context.Context, id string, req *models.UpdatePackageRequest) (*models.Package, error)
	DeletePackage(ctx context.Context, id string) error
}

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ChangePassword(ctx context.Context, userID string, req *models.ChangePasswordRequest) error
	RequestOTP(ctx context.Context, req *models.RequestOTPRequest) error
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdatePermissions(ctx context.Context, id string, req *models.UpdatePermissionsRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// EnquiryServicer defines the interface for enquiry operations.
type EnquiryServicer interface {
	CreateEnquiry(ctx context.Context, source string, req *models.CreateEnquiryRequest) (*models.Enquiry, error)
	ListEnquiries(ctx context.Context) ([]models.Enquiry, error)
	DeleteEnquiry(ctx context.Context, id string) error
}

// Ensure concrete types implement interfaces
var (
	_ SubPackageServicer = (*SubPackageService)(nil)
	_ PackageServicer    = (*PackageService)(nil)
	_ AuthServicer       = (*AuthService)(nil)
	_ UserServicer       = (*UserService)(nil)
	_ EnquiryServicer    = (*EnquiryService)(nil)
)
