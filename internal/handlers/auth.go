package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"folio/internal/constants"
	"folio/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	settingService *services.SettingService
}

func NewAuthHandler(settingService *services.SettingService) *AuthHandler {
	return &AuthHandler{settingService: settingService}
}

func (h *AuthHandler) ShowLoginPage(c *gin.Context) {
	if isAuthenticated(sessions.Default(c)) {
		c.Redirect(http.StatusFound, "/admin/")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	session := sessions.Default(c)
	submittedPassword := c.PostForm(constants.SettingPassword)

	adminPassword, err := h.settingService.GetSetting(constants.SettingPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "服务器内部错误",
		})
		return
	}

	if submittedPassword == "" || subtle.ConstantTimeCompare([]byte(submittedPassword), []byte(adminPassword)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "密码错误，请重新输入！",
		})
		return
	}

	session.Set(constants.SessionKeyAuthenticated, true)
	if err := session.Save(); err != nil {
		log.Printf("保存会话失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "服务器内部错误"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"redirect": "/admin/",
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}
