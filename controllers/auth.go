package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/config"
	"backend/utils"
)

type AuthController struct {
	cfg *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{cfg: cfg}
}

// Login checks the single admin credential pair held in the environment.
// On success a session token is issued both as a cookie and in the body.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "username and password are required"})
		return
	}

	if ac.cfg.AdminUsername == "" || ac.cfg.AdminPassword == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server configuration error"})
		return
	}

	if req.Username != ac.cfg.AdminUsername || !utils.CheckCredential(ac.cfg.AdminPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(ac.cfg.JWTSecret, req.Username)
	if err != nil {
		utils.LogError(err, "login: generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server configuration error"})
		return
	}

	c.SetCookie("token", token, int((24 * time.Hour).Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
