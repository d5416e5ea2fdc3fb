package middleware

import (
	"tour-catalog/internal/authz"
	"tour-catalog/internal/models"
	"tour-catalog/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequirePermission returns a middleware that lets the request through only if
// the authenticated user holds perm. It must run after Auth.
func RequirePermission(authorizer authz.Authorizer, perm models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		allowed, err := authorizer.CanPerform(c.Request.Context(), userID, perm)
		if err != nil {
			logrus.WithError(err).WithField("permission", perm).Error("Permission check failed")
			response.InternalError(c, err)
			c.Abort()
			return
		}

		if !allowed {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin returns a middleware that only admits users whose stored role is
// admin. It must run after Auth.
func RequireAdmin(authorizer authz.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		isAdmin, err := authorizer.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			logrus.WithError(err).Error("Admin check failed")
			response.InternalError(c, err)
			c.Abort()
			return
		}

		if !isAdmin {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// sessionUserID aborts with 401 and returns false when no valid session is present.
func sessionUserID(c *gin.Context) (primitive.ObjectID, bool) {
	session, ok := GetSession(c)
	if !ok || session.UserID == "" {
		response.Unauthorized(c, "user not authenticated")
		c.Abort()
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		c.Abort()
		return primitive.NilObjectID, false
	}
	return userID, true
}
