// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"net/http"

	apperrors "tour-catalog/internal/errors"
	"tour-catalog/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps a service error onto the HTTP error taxonomy.
// Anything unmapped is logged and reported as a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		response.BadRequest(c, rootMessage(err))
	case apperrors.IsNotFound(err):
		response.NotFound(c, rootMessage(err))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidOTP), errors.Is(err, apperrors.ErrInvalidResetToken):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		response.Conflict(c, err.Error())
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("Request failed")
		_ = c.Error(err)
		response.InternalError(c, err)
	}
}

// rootMessage keeps the wrapped detail of invalid image errors, which names
// the offending file, and the plain sentinel text otherwise.
func rootMessage(err error) string {
	if errors.Is(err, apperrors.ErrInvalidImage) {
		return err.Error()
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func statusOK(c *gin.Context, message string) {
	response.Message(c, http.StatusOK, message)
}
