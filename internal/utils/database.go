package utils

import (
	"folio/internal/constants"
	"folio/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSettings are written on first start. Later edits made through the
// settings page are never overwritten.
var DefaultSettings = map[string]string{
	constants.SettingPassword:         "admin",
	constants.SettingSiteTitle:        "SHAH MD. JALAL UDDIN - Computational Chemistry Researcher",
	constants.SettingSiteDescription:  "Graduate student in computational chemistry specializing in molecular modeling, web applications, and scientific computing.",
	constants.SettingSiteURL:          "https://shahjalal-shanto.com",
	constants.SettingAuthorName:       "SHAH MD. JALAL UDDIN",
	constants.SettingAuthorEmail:      "Shahjalal2313@gmail.com",
	constants.SettingWordsPerMinute:   "200",
	constants.SettingMinifyHTML:       "false",
	constants.SettingContentAuditCron: "",
}

func InitDatabase(dbPath string) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = "folio.db"
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// 自动迁移模式
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		return nil, err
	}

	if err := seedSettings(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedSettings populates the database with default settings if they don't exist.
func seedSettings(db *gorm.DB) error {
	for key, value := range DefaultSettings {
		setting := models.Setting{Key: key}
		result := db.Where(models.Setting{Key: key}).Attrs(models.Setting{Value: value}).FirstOrCreate(&setting)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
