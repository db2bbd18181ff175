package handler

import (
	"errors"
	"net/http"

	"github.com/fandyandika/hello-saas/internal/middleware"
	"github.com/fandyandika/hello-saas/internal/model"
	"github.com/fandyandika/hello-saas/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmailExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrSignupThrottled):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("register failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}

	jwtService := service.NewJWTService()
	token, err := jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusCreated, model.AuthResponse{
			ID:      user.ID,
			Email:   user.Email,
			Message: "Berhasil! Silakan login untuk masuk ke dashboard.",
		})
		return
	}

	c.JSON(http.StatusCreated, model.AuthResponse{
		ID:      user.ID,
		Email:   user.Email,
		Token:   token,
		Message: "Berhasil! Akun Anda sudah terdaftar.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, token, err := h.userService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		ID:      user.ID,
		Email:   user.Email,
		Token:   token,
		Message: "Login berhasil",
	})
}

// Session returns the authenticated identity, or 401 via the middleware.
// The account is re-checked against the store so a token for a deleted
// user stops working before it expires.
func (h *AuthHandler) Session(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.userService.GetByID(userID)
	if err != nil {
		log.WithError(err).Error("session lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}

	c.JSON(http.StatusOK, model.SessionResponse{
		ID:    user.ID,
		Email: middleware.GetEmail(c),
	})
}

// Logout is a no-op on the server: sessions are stateless JWTs and the
// client discards its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req model.CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email tidak valid"})
		return
	}

	exists, err := h.userService.EmailExists(req.Email)
	if err != nil {
		log.WithError(err).Error("check-email failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengecek email. Coba lagi."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email tidak valid"})
		return
	}

	if err := h.userService.RequestPasswordReset(req.Email); err != nil {
		log.WithError(err).Error("password reset request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memproses permintaan reset password"})
		return
	}

	// Same response whether or not the account exists.
	c.JSON(http.StatusOK, gin.H{"message": "Jika email terdaftar, link reset password sudah dikirim."})
}

func (h *AuthHandler) ConfirmReset(c *gin.Context) {
	var req model.ConfirmResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.userService.ConfirmPasswordReset(req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrResetTokenInvalid), errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("password reset confirm failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengatur ulang password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password berhasil diperbarui. Silakan login."})
}
