package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/mailer"
	"tour-catalog/internal/models"
	"tour-catalog/internal/repository"
	"tour-catalog/pkg/auth"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService handles login, password changes and the OTP reset flow.
type AuthService struct {
	userRepo      repository.UserRepository
	jwtManager    auth.TokenManager
	secrets       auth.SecretGenerator
	mailer        mailer.Mailer
	otpTTL        time.Duration
	resetTokenTTL time.Duration
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo      repository.UserRepository
	JWTManager    auth.TokenManager
	Secrets       auth.SecretGenerator
	Mailer        mailer.Mailer
	OTPTTL        time.Duration
	ResetTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:      cfg.UserRepo,
		jwtManager:    cfg.JWTManager,
		secrets:       cfg.Secrets,
		mailer:        cfg.Mailer,
		otpTTL:        cfg.OTPTTL,
		resetTokenTTL: cfg.ResetTokenTTL,
	}
}

// Login authenticates a user and returns an access token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

// ChangePassword replaces the password of a logged-in user after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *models.ChangePasswordRequest) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, objectID)
	if err != nil {
		return err
	}

	if err := auth.CheckPassword(req.CurrentPassword, user.Password); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	return s.setPassword(ctx, user.ID, req.NewPassword)
}

// RequestOTP e-mails a one-time password to the account owner. Unknown
// addresses succeed silently so the endpoint cannot be used to probe accounts.
func (s *AuthService) RequestOTP(ctx context.Context, req *models.RequestOTPRequest) error {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logrus.WithField("email", email).Info("OTP requested for unknown account")
			return nil
		}
		return err
	}

	otp, err := s.secrets.GenerateOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	if err := s.userRepo.SetOTP(ctx, user.ID, s.secrets.Hash(otp), time.Now().Add(s.otpTTL)); err != nil {
		return err
	}

	if err := s.mailer.SendOTP(ctx, user.Email, otp, s.otpTTL); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}

	return nil
}

// VerifyOTP exchanges a valid OTP for a short-lived reset token.
func (s *AuthService) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, err
	}

	if user.OTP == "" || user.OTPExpires == nil || time.Now().After(*user.OTPExpires) {
		return nil, apperrors.ErrInvalidOTP
	}
	if !s.secrets.CompareHashes(s.secrets.Hash(req.OTP), user.OTP) {
		return nil, apperrors.ErrInvalidOTP
	}

	token, err := s.secrets.GenerateResetToken()
	if err != nil {
		return nil, fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.userRepo.SetResetToken(ctx, user.ID, s.secrets.Hash(token), time.Now().Add(s.resetTokenTTL)); err != nil {
		return nil, err
	}

	return &models.VerifyOTPResponse{ResetToken: token}, nil
}

// ResetPassword sets a new password using a reset token issued by VerifyOTP.
func (s *AuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByResetToken(ctx, s.secrets.Hash(req.Token))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return err
	}

	if user.ResetPasswordExpires == nil || time.Now().After(*user.ResetPasswordExpires) {
		return apperrors.ErrInvalidResetToken
	}

	return s.setPassword(ctx, user.ID, req.Password)
}

func (s *AuthService) setPassword(ctx context.Context, id primitive.ObjectID, password string) error {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, id, hashedPassword)
}
