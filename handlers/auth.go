package handlers

import (
	"net/http"
	"time"

	"camisetas-api/apperrors"
	"camisetas-api/config"
	"camisetas-api/middleware"
	"camisetas-api/models"
	"camisetas-api/rolegate"
	"camisetas-api/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. It does not log the user in: the
// account starts unverified and login is refused until the emailed
// verification link is followed.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Weak password is reported distinctly from a duplicate account
	if len(req.Password) < 6 {
		writeError(c, &apperrors.ValidationError{Field: "password", Reason: "must be at least 6 characters"})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		writeError(c, &apperrors.AuthError{Code: apperrors.CodeDuplicateEmail, Message: "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		writeError(c, &apperrors.BackendError{Op: "create user", Err: err})
		return
	}

	sendVerificationEmail(c, &user)

	session.Default.Publish(session.Event{Type: session.EventSignUp, UserID: user.ID, Email: user.Email})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created. Check your email to verify your address before logging in",
		"user": gin.H{
			"id":        user.ID,
			"full_name": user.FullName,
			"email":     user.Email,
		},
	})
}

func sendVerificationEmail(c *gin.Context, user *models.User) {
	token, err := middleware.GenerateActionToken(user, middleware.PurposeVerifyEmail, 48*time.Hour)
	if err != nil {
		Log.Error("failed to generate verification token", zap.Error(err))
		return
	}
	link := config.C.BaseURL + "/api/auth/verify?token=" + token
	html := "<p>Hola " + user.FullName + ",</p><p>Confirma tu correo para activar tu cuenta:</p>" +
		"<p><a href=\"" + link + "\">Verificar correo</a></p>"
	if err := Mail.Send(c.Request.Context(), user.Email, "Verifica tu correo", html); err != nil {
		Log.Error("failed to send verification email", zap.String("to", user.Email), zap.Error(err))
	}
}

// VerifyEmail activates an account from the emailed link
func VerifyEmail(c *gin.Context) {
	claims, err := middleware.ParseActionToken(c.Query("token"), middleware.PurposeVerifyEmail)
	if err != nil {
		writeError(c, err)
		return
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		writeError(c, err)
		return
	}
	if !user.EmailVerified {
		config.DB.Model(&user).Update("email_verified", true)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified. You can log in now"})
}

// Login authenticates a user and returns a session JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		writeError(c, &apperrors.AuthError{Code: apperrors.CodeInvalidCredentials, Message: "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(c, &apperrors.AuthError{Code: apperrors.CodeInvalidCredentials, Message: "Invalid email or password"})
		return
	}
	if !user.EmailVerified {
		writeError(c, &apperrors.AuthError{Code: apperrors.CodeEmailNotVerified, Message: "Email not verified yet. Check your inbox"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	session.Default.Publish(session.Event{Type: session.EventLogin, UserID: user.ID, Email: user.Email})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":         user.ID,
			"full_name":  user.FullName,
			"email":      user.Email,
			"phone":      user.Phone,
			"avatar_url": user.AvatarURL,
			"role":       rolegate.Decide(&user, config.C.AdminEmail),
		},
	})
}

// Logout revokes the current token until its natural expiry
func Logout(c *gin.Context) {
	expiry, err := middleware.GetTokenExpiry(c)
	if err != nil {
		expiry = time.Now().Add(24 * time.Hour)
	}
	session.Default.Revoke(middleware.GetJTI(c), expiry)
	session.Default.Publish(session.Event{Type: session.EventLogout, UserID: middleware.GetUserID(c), Email: middleware.GetEmail(c)})
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetSession reports the current identity (or null) and its role
// decision. No token is a valid unauthenticated answer, not an error.
func GetSession(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		c.JSON(http.StatusOK, gin.H{"user": nil, "role": rolegate.Decide(nil, config.C.AdminEmail)})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil, "role": rolegate.Decide(nil, config.C.AdminEmail)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "role": rolegate.Decide(&user, config.C.AdminEmail)})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword emails a reset link. Always answers 200 so account
// existence is not leaked.
func ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err == nil {
		token, err := middleware.GenerateActionToken(&user, middleware.PurposeResetPassword, time.Hour)
		if err == nil {
			link := config.C.BaseURL + "/reset-password?token=" + token
			html := "<p>Hola " + user.FullName + ",</p><p>Restablece tu contraseña aquí:</p>" +
				"<p><a href=\"" + link + "\">Restablecer contraseña</a></p><p>El enlace caduca en una hora.</p>"
			if err := Mail.Send(c.Request.Context(), user.Email, "Restablecer contraseña", html); err != nil {
				Log.Error("failed to send reset email", zap.String("to", user.Email), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that account exists, a reset email is on its way"})
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword sets a new password from an emailed reset token
func ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.NewPassword) < 6 {
		writeError(c, &apperrors.ValidationError{Field: "new_password", Reason: "must be at least 6 characters"})
		return
	}

	claims, err := middleware.ParseActionToken(req.Token, middleware.PurposeResetPassword)
	if err != nil {
		writeError(c, err)
		return
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		writeError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := config.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		writeError(c, &apperrors.BackendError{Op: "reset password", Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated. You can log in now"})
}
