package handlers

import (
	"errors"
	"net/http"

	"camisetas-api/apperrors"
	"camisetas-api/mailer"
	"camisetas-api/repository"
	"camisetas-api/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Package-level collaborators, wired once from main
var (
	Mail    mailer.Sender = &mailer.NoopSender{}
	Avatars *storage.AvatarStore
	Resv    *repository.Reservations
	Log     = zap.NewNop()
)

func Init(mail mailer.Sender, avatars *storage.AvatarStore, resv *repository.Reservations, log *zap.Logger) {
	if mail != nil {
		Mail = mail
	}
	Avatars = avatars
	Resv = resv
	if log != nil {
		Log = log
	}
}

// writeError converts the error taxonomy to a JSON response. Every error
// ends here as a user-visible payload; none crashes the request.
func writeError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var authErr *apperrors.AuthError
	var stateErr *apperrors.InvalidStateError
	var backendErr *apperrors.BackendError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.As(err, &authErr):
		status := http.StatusUnauthorized
		if authErr.Code == apperrors.CodeDuplicateEmail {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": authErr.Message, "code": authErr.Code})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": stateErr.Error(), "current_status": stateErr.Current})
	case errors.As(err, &backendErr):
		Log.Error("backend failure", zap.String("op", backendErr.Op), zap.Error(backendErr.Err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Storage backend failure, please try again"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		Log.Error("unexpected failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
