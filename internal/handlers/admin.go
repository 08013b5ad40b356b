package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"folio/internal/constants"
	"folio/internal/repository"
	"folio/internal/services"
	"folio/internal/tasks"
	"folio/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

type AdminHandler struct {
	postService    *services.PostService
	settingService *services.SettingService
	scheduler      *tasks.Scheduler
}

func NewAdminHandler(postService *services.PostService, settingService *services.SettingService, scheduler *tasks.Scheduler) *AdminHandler {
	return &AdminHandler{
		postService:    postService,
		settingService: settingService,
		scheduler:      scheduler,
	}
}

// Dashboard shows the load status of every content file.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	results := h.postService.Audit()
	malformed, skipped := 0, 0
	for _, r := range results {
		switch r.Status {
		case repository.StatusMalformed:
			malformed++
		case repository.StatusSkipped:
			skipped++
		}
	}

	session := sessions.Default(c)
	flashes := session.Flashes(constants.SessionKeySuccessFlash)
	session.Save() // Clear flashes after reading

	data := gin.H{
		"results":   results,
		"total":     len(results),
		"malformed": malformed,
		"skipped":   skipped,
		"Flashes":   flashes,
		"Title":     "Content Audit",
	}
	if h.scheduler != nil {
		if report, ok := h.scheduler.LastReport(); ok {
			data["lastReport"] = report
		}
	}
	render(c, http.StatusOK, "admin.html", data)
}

// RunAudit runs the scheduled audit job immediately.
func (h *AdminHandler) RunAudit(c *gin.Context) {
	if h.scheduler != nil {
		report := h.scheduler.RunAudit()
		session := sessions.Default(c)
		session.AddFlash("审计完成: 共 "+strconv.Itoa(report.Total)+" 篇, "+strconv.Itoa(len(report.Malformed))+" 篇无法解析", constants.SessionKeySuccessFlash)
		session.Save()
	}
	c.Redirect(http.StatusFound, "/admin/")
}

func (h *AdminHandler) ShowSettingsPage(c *gin.Context) {
	// The render function will automatically inject settings from the context.
	render(c, http.StatusOK, "settings.html", gin.H{"Title": "Settings"})
}

// UpdateSettings saves the known settings from the form. Unknown keys are
// ignored and an empty password keeps the current one.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "无效的表单数据"})
		return
	}

	settingsToUpdate := make(map[string]string)
	for key, values := range c.Request.PostForm {
		if _, known := utils.DefaultSettings[key]; !known || len(values) == 0 {
			continue
		}
		value := strings.TrimSpace(values[0])
		if key == constants.SettingPassword && value == "" {
			continue
		}
		settingsToUpdate[key] = value
	}

	if v, ok := settingsToUpdate[constants.SettingWordsPerMinute]; ok {
		if n, err := strconv.Atoi(v); err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "每分钟字数必须是正整数"})
			return
		}
	}
	if spec := settingsToUpdate[constants.SettingContentAuditCron]; spec != "" {
		if _, err := cron.ParseStandard(spec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "无效的 cron 表达式: " + err.Error()})
			return
		}
	}

	if err := h.settingService.UpdateSettings(settingsToUpdate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "更新设置失败"})
		return
	}

	if h.scheduler != nil {
		h.scheduler.ReloadTasks()
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "设置已成功保存！"})
}
