package handler

import (
	"tour-catalog/internal/middleware"
	"tour-catalog/internal/models"
	"tour-catalog/internal/service"
	"tour-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// GetMe godoc
// @Summary      Get current user
// @Description  Get the profile and permissions of the logged-in user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, user)
}

// CreateUser godoc
// @Summary      Create user
// @Description  Create an employee or admin account (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateUserRequest  true  "Account details"
// @Success      201      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, user)
}

// GetAllUsers godoc
// @Summary      List users
// @Description  List all accounts (admin only)
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.User}
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, users)
}

// UpdatePermissions godoc
// @Summary      Update permissions
// @Description  Replace a user's role and/or permission flags (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "User ID"
// @Param        request  body      models.UpdatePermissionsRequest  true  "Role and permissions"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/permissions [put]
func (h *UserHandler) UpdatePermissions(c *gin.Context) {
	var req models.UpdatePermissionsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdatePermissions(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Delete an account (admin only). Admins cannot delete themselves.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == middleware.GetUserID(c) {
		response.BadRequest(c, "you cannot delete your own account")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	statusOK(c, "User deleted successfully")
}
