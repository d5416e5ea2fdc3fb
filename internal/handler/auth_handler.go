package handler

import (
	"tour-catalog/internal/middleware"
	"tour-catalog/internal/models"
	"tour-catalog/internal/service"
	"tour-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// otpSentMessage is returned whether or not the e-mail belongs to an account.
const otpSentMessage = "If an account exists for this email, an OTP has been sent"

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      User login
// @Description  Authenticate a user and return an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Change the password of the logged-in user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ChangePasswordRequest  true  "Current and new password"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), middleware.GetUserID(c), &req); err != nil {
		respondError(c, err)
		return
	}

	statusOK(c, "Password updated successfully")
}

// RequestOTP godoc
// @Summary      Request password reset OTP
// @Description  E-mail a one-time password. The response does not reveal whether the account exists.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RequestOTPRequest  true  "Account e-mail"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/request-otp [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req models.RequestOTPRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.RequestOTP(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	statusOK(c, otpSentMessage)
}

// VerifyOTP godoc
// @Summary      Verify OTP
// @Description  Exchange a valid OTP for a password reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.VerifyOTPRequest  true  "E-mail and OTP"
// @Success      200      {object}  response.Response{data=models.VerifyOTPResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.VerifyOTP(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "OTP verified", result)
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Set a new password using a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ResetPasswordRequest  true  "Reset token and new password"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	statusOK(c, "Password reset successfully")
}
