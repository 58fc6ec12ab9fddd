package handlers

import (
	"net/http"
	"time"

	"jojocolaresbeauty/config"
	"jojocolaresbeauty/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminSessionDuration = 12 * time.Hour

// AdminLoginHandler checks the back-office password against the configured
// bcrypt hash and issues a session token.
func AdminLoginHandler(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "admin login not configured", "")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateAdminToken(adminSessionDuration)
	if err != nil {
		zap.L().Error("failed to sign admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminSessionDuration.Seconds()),
	})
}
