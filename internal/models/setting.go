package models

import "time"

// Setting is one row of the settings table. Keys are the Setting* constants.
type Setting struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}
