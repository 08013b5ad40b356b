package constants

const (
	// Context Keys
	ContextKeyIsLoggedIn = "IsLoggedIn"
	ContextKeySettings   = "settings"

	// Session Keys
	SessionKeyAuthenticated = "authenticated"
	SessionKeySuccessFlash  = "success"

	// Setting Keys
	SettingPassword         = "password"
	SettingSiteTitle        = "site_title"
	SettingSiteDescription  = "site_description"
	SettingSiteURL          = "site_url"
	SettingAuthorName       = "author_name"
	SettingAuthorEmail      = "author_email"
	SettingWordsPerMinute   = "words_per_minute"
	SettingMinifyHTML       = "minify_html"
	SettingContentAuditCron = "content_audit_cron"
)
