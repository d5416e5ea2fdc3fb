// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"tour-catalog/internal/models"
	"tour-catalog/internal/service"
)

// MockSubPackageService is a mock implementation of SubPackageServicer.
type MockSubPackageService struct {
	CreateSubPackageFunc   func(ctx context.Context, req *models.SubPackageRequest, files service.SubPackageFiles) (*models.SubPackage, error)
	UpdateSubPackageFunc   func(ctx context.Context, id string, req *models.SubPackageRequest, files service.SubPackageFiles) (*models.SubPackage, error)
	DeleteSubPackageFunc   func(ctx context.Context, id string) error
	DeleteGalleryImageFunc func(ctx context.Context, subPackageID, imageID string) error
	ListByParentFunc       func(ctx context.Context, packageID string) ([]models.SubPackage, error)
	GetSubPackageFunc      func(ctx context.Context, id string) (*models.SubPackage, error)
	ListAllFunc            func(ctx context.Context) ([]models.SubPackage, error)
	GetDealsOfTheDayFunc   func(ctx context.Context) ([]models.SubPackage, error)
	GetLatestFunc          func(ctx context.Context, limit int) ([]models.SubPackage, error)
}

func (m *MockSubPackageService) CreateSubPackage(ctx context.Context, req *models.SubPackageRequest, files service.SubPackageFiles) (*models.SubPackage, error) {
	if m.CreateSubPackageFunc != nil {
		return m.CreateSubPackageFunc(ctx, req, files)
	}
	return nil, nil
}

func (m *MockSubPackageService) UpdateSubPackage(ctx context.Context, id string, req *models.SubPackageRequest, files service.SubPackageFiles) (*models.SubPackage, error) {
	if m.UpdateSubPackageFunc != nil {
		return m.UpdateSubPackageFunc(ctx, id, req, files)
	}
	return nil, nil
}

func (m *MockSubPackageService) DeleteSubPackage(ctx context.Context, id string) error {
	if m.DeleteSubPackageFunc != nil {
		return m.DeleteSubPackageFunc(ctx, id)
	}
	return nil
}

func (m *MockSubPackageService) DeleteGalleryImage(ctx context.Context, subPackageID, imageID string) error {
	if m.DeleteGalleryImageFunc != nil {
		return m.DeleteGalleryImageFunc(ctx, subPackageID, imageID)
	}
	return nil
}

func (m *MockSubPackageService) ListByParent(ctx context.Context, packageID string) ([]models.SubPackage, error) {
	if m.ListByParentFunc != nil {
		return m.ListByParentFunc(ctx, packageID)
	}
	return nil, nil
}

func (m *MockSubPackageService) GetSubPackage(ctx context.Context, id string) (*models.SubPackage, error) {
	if m.GetSubPackageFunc != nil {
		return m.GetSubPackageFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSubPackageService) ListAll(ctx context.Context) ([]models.SubPackage, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockSubPackageService) GetDealsOfTheDay(ctx context.Context) ([]models.SubPackage, error) {
	if m.GetDealsOfTheDayFunc != nil {
		return m.GetDealsOfTheDayFunc(ctx)
	}
	return nil, nil
}

func (m *MockSubPackageService) GetLatest(ctx context.Context, limit int) ([]models.SubPackage, error) {
	if m.GetLatestFunc != nil {
		return m.GetLatestFunc(ctx, limit)
	}
	return nil, nil
}

// MockPackageService is a mock implementation of PackageServicer.
type MockPackageService struct {
	CreatePackageFunc func(ctx context.Context, req *models.CreatePackageRequest) (*models.Package, error)
	ListPackagesFunc  func(ctx context.Context) ([]models.Package, error)
	GetPackageFunc    func(ctx context.Context, id string) (*models.Package, error)
	UpdatePackageFunc func(ctx context.Context, id string, req *models.UpdatePackageRequest) (*models.Package, error)
	DeletePackageFunc func(ctx context.Context, id string) error
}

func (m *MockPackageService) CreatePackage(ctx context.Context, req *models.CreatePackageRequest) (*models.Package, error) {
	if m.CreatePackageFunc != nil {
		return m.CreatePackageFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockPackageService) ListPackages(ctx context.Context) ([]models.Package, error) {
	if m.ListPackagesFunc != nil {
		return m.ListPackagesFunc(ctx)
	}
	return nil, nil
}

func (m *MockPackageService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	if m.GetPackageFunc != nil {
		return m.GetPackageFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPackageService) UpdatePackage(ctx context.Context, id string, req *models.UpdatePackageRequest) (*models.Package, error) {
	if m.UpdatePackageFunc != nil {
		return m.UpdatePackageFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockPackageService) DeletePackage(ctx context.Context, id string) error {
	if m.DeletePackageFunc != nil {
		return m.DeletePackageFunc(ctx, id)
	}
	return nil
}

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ChangePasswordFunc func(ctx context.Context, userID string, req *models.ChangePasswordRequest) error
	RequestOTPFunc     func(ctx context.Context, req *models.RequestOTPRequest) error
	VerifyOTPFunc      func(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error)
	ResetPasswordFunc  func(ctx context.Context, req *models.ResetPasswordRequest) error
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID string, req *models.ChangePasswordRequest) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, req)
	}
	return nil
}

func (m *MockAuthService) RequestOTP(ctx context.Context, req *models.RequestOTPRequest) error {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, req)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	CreateUserFunc        func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUserFunc           func(ctx context.Context, id string) (*models.User, error)
	GetAllUsersFunc       func(ctx context.Context) ([]models.User, error)
	UpdatePermissionsFunc func(ctx context.Context, id string, req *models.UpdatePermissionsRequest) (*models.User, error)
	DeleteUserFunc        func(ctx context.Context, id string) error
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) UpdatePermissions(ctx context.Context, id string, req *models.UpdatePermissionsRequest) (*models.User, error) {
	if m.UpdatePermissionsFunc != nil {
		return m.UpdatePermissionsFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockEnquiryService is a mock implementation of EnquiryServicer.
type MockEnquiryService struct {
	CreateEnquiryFunc func(ctx context.Context, source string, req *models.CreateEnquiryRequest) (*models.Enquiry, error)
	ListEnquiriesFunc func(ctx context.Context) ([]models.Enquiry, error)
	DeleteEnquiryFunc func(ctx context.Context, id string) error
}

func (m *MockEnquiryService) CreateEnquiry(ctx context.Context, source string, req *models.CreateEnquiryRequest) (*models.Enquiry, error) {
	if m.CreateEnquiryFunc != nil {
		return m.CreateEnquiryFunc(ctx, source, req)
	}
	return nil, nil
}

func (m *MockEnquiryService) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	if m.ListEnquiriesFunc != nil {
		return m.ListEnquiriesFunc(ctx)
	}
	return nil, nil
}

func (m *MockEnquiryService) DeleteEnquiry(ctx context.Context, id string) error {
	if m.DeleteEnquiryFunc != nil {
		return m.DeleteEnquiryFunc(ctx, id)
	}
	return nil
}

// Ensure mocks implement interfaces
var (
	_ service.SubPackageServicer = (*MockSubPackageService)(nil)
	_ service.PackageServicer    = (*MockPackageService)(nil)
	_ service.AuthServicer       = (*MockAuthService)(nil)
	_ service.UserServicer       = (*MockUserService)(nil)
	_ service.EnquiryServicer    = (*MockEnquiryService)(nil)
)
