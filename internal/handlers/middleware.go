package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"folio/internal/constants"
	"folio/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// APIAuthMiddleware checks for a valid Bearer token. The token is the admin
// password.
func APIAuthMiddleware(settingService *services.SettingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminPassword, err := settingService.GetSetting(constants.SettingPassword)
		if err != nil || adminPassword == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "需要 Authorization 请求头"})
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization 请求头格式必须为 Bearer {token}"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(adminPassword)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "无效的 token"})
			return
		}

		c.Next()
	}
}

func isAuthenticated(session sessions.Session) bool {
	v, ok := session.Get(constants.SessionKeyAuthenticated).(bool)
	return ok && v
}

// AuthMiddleware checks if a user is authenticated via session flag.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAuthenticated(sessions.Default(c)) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SettingsMiddleware puts the cached settings and the login status on the
// context for render.
func SettingsMiddleware(settingService *services.SettingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := settingService.GetAllSettings()
		if err != nil {
			// The pages still render with their own defaults.
			log.Printf("无法加载设置: %v", err)
			settings = make(map[string]string)
		}
		// Never expose the admin password to templates.
		delete(settings, constants.SettingPassword)
		c.Set(constants.ContextKeySettings, settings)
		c.Set(constants.ContextKeyIsLoggedIn, isAuthenticated(sessions.Default(c)))

		c.Next()
	}
}

// render is a helper function to render templates with common data.
func render(c *gin.Context, status int, templateName string, data gin.H) {
	if settings, ok := c.Get(constants.ContextKeySettings); ok {
		for key, value := range settings.(map[string]string) {
			if _, exists := data[key]; !exists {
				data[key] = value
			}
		}
	}

	if isLoggedIn, ok := c.Get(constants.ContextKeyIsLoggedIn); ok {
		data[constants.ContextKeyIsLoggedIn] = isLoggedIn
	}
	data["Path"] = c.Request.URL.Path

	c.HTML(status, templateName, data)
}

// renderError shows error.html with a message.
func renderError(c *gin.Context, status int, message string) {
	render(c, status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}
