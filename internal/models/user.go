package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Permission names one of the catalog write capabilities an employee may hold.
type Permission string

// Catalog permissions.
const (
	PermCreatePackages    Permission = "canCreatePackages"
	PermUpdatePackages    Permission = "canUpdatePackages"
	PermDeletePackages    Permission = "canDeletePackages"
	PermCreateSubPackages Permission = "canCreateSubPackages"
	PermUpdateSubPackages Permission = "canUpdateSubPackages"
	PermDeleteSubPackages Permission = "canDeleteSubPackages"
)

// Permissions are the per-user catalog write flags.
type Permissions struct {
	CanCreatePackages    bool `json:"canCreatePackages" bson:"canCreatePackages"`
	CanUpdatePackages    bool `json:"canUpdatePackages" bson:"canUpdatePackages"`
	CanDeletePackages    bool `json:"canDeletePackages" bson:"canDeletePackages"`
	CanCreateSubPackages bool `json:"canCreateSubPackages" bson:"canCreateSubPackages"`
	CanUpdateSubPackages bool `json:"canUpdateSubPackages" bson:"canUpdateSubPackages"`
	CanDeleteSubPackages bool `json:"canDeleteSubPackages" bson:"canDeleteSubPackages"`
}

// Has reports whether the flag for p is set.
func (p Permissions) Has(perm Permission) bool {
	switch perm {
	case PermCreatePackages:
		return p.CanCreatePackages
	case PermUpdatePackages:
		return p.CanUpdatePackages
	case PermDeletePackages:
		return p.CanDeletePackages
	case PermCreateSubPackages:
		return p.CanCreateSubPackages
	case PermUpdateSubPackages:
		return p.CanUpdateSubPackages
	case PermDeleteSubPackages:
		return p.CanDeleteSubPackages
	}
	return false
}

// User represents an admin or employee account.
type User struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name                 string             `json:"name" bson:"name" example:"Asha Rawat"`
	Email                string             `json:"email" bson:"email" example:"asha@example.com"`
	Password             string             `json:"-" bson:"password"` // bcrypt hash, never serialised
	Role                 string             `json:"role" bson:"role" example:"employee"`
	Permissions          Permissions        `json:"permissions" bson:"permissions"`
	OTP                  string             `json:"-" bson:"otp,omitempty"`
	OTPExpires           *time.Time         `json:"-" bson:"otpExpires,omitempty"`
	ResetPasswordToken   string             `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpires *time.Time         `json:"-" bson:"resetPasswordExpires,omitempty"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CreateUserRequest is the payload an admin sends to create an account.
type CreateUserRequest struct {
	Name        string      `json:"name" binding:"required,min=2" example:"Asha Rawat"`
	Email       string      `json:"email" binding:"required,email" example:"asha@example.com"`
	Password    string      `json:"password" binding:"required,min=6" example:"secret123"`
	Role        string      `json:"role" binding:"omitempty,role" example:"employee"`
	Permissions Permissions `json:"permissions"`
}

// UpdatePermissionsRequest replaces a user's role and/or permission flags.
type UpdatePermissionsRequest struct {
	Role        *string      `json:"role" binding:"omitempty,role" example:"employee"`
	Permissions *Permissions `json:"permissions"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}

// ChangePasswordRequest is the payload for a logged-in user changing their password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" example:"secret123"`
	NewPassword     string `json:"newPassword" binding:"required,min=6" example:"n3wsecret"`
}

// RequestOTPRequest starts the password reset flow.
type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"asha@example.com"`
}

// VerifyOTPRequest exchanges an OTP for a reset token.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"asha@example.com"`
	OTP   string `json:"otp" binding:"required,len=6,numeric" example:"482913"`
}

// VerifyOTPResponse carries the reset token issued after OTP verification.
type VerifyOTPResponse struct {
	ResetToken string `json:"resetToken" example:"rp_9f86d081884c7d659a2feaa0c55ad015"`
}

// ResetPasswordRequest sets a new password using a reset token.
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required" example:"rp_9f86d081884c7d659a2feaa0c55ad015"`
	Password string `json:"password" binding:"required,min=6" example:"n3wsecret"`
}
