package handlers

import (
	"errors"
	"net/http"

	"camisetas-api/apperrors"
	"camisetas-api/config"
	"camisetas-api/middleware"
	"camisetas-api/models"
	"camisetas-api/storage"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

// UpdateProfile changes the user's display name and phone
func UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{"full_name": req.FullName, "phone": req.Phone}
	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		writeError(c, &apperrors.BackendError{Op: "update profile", Err: err})
		return
	}

	config.DB.First(&user, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

// UploadAvatar stores a new profile image and saves its public URL
func UploadAvatar(c *gin.Context) {
	userID := middleware.GetUserID(c)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Form file 'avatar' required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read uploaded file"})
		return
	}
	defer file.Close()

	url, err := Avatars.Save(file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			writeError(c, &apperrors.ValidationError{Field: "avatar", Reason: err.Error()})
			return
		}
		writeError(c, &apperrors.BackendError{Op: "store avatar", Err: err})
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", userID).Update("avatar_url", url).Error; err != nil {
		writeError(c, &apperrors.BackendError{Op: "save avatar url", Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Avatar updated", "avatar_url": url})
}
