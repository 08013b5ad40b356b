package services

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"folio/internal/constants"
	"folio/internal/models"
	"folio/internal/repository"
)

type SettingService struct {
	repo         *repository.SettingRepository
	settings     map[string]string
	settingsLock sync.RWMutex
}

func NewSettingService(repo *repository.SettingRepository) *SettingService {
	s := &SettingService{
		repo:     repo,
		settings: make(map[string]string),
	}
	s.loadSettings()
	return s
}

func (s *SettingService) loadSettings() {
	s.settingsLock.Lock()
	defer s.settingsLock.Unlock()

	settings, err := s.repo.GetAllSettings()
	if err != nil {
		log.Printf("无法加载设置: %v", err)
		return
	}
	s.settings = settings
}

// GetAllSettings retrieves all settings as a map from the cache.
func (s *SettingService) GetAllSettings() (map[string]string, error) {
	s.settingsLock.RLock()
	defer s.settingsLock.RUnlock()

	// Return a copy to prevent modification of the cache from outside.
	settingsCopy := make(map[string]string, len(s.settings))
	for key, value := range s.settings {
		settingsCopy[key] = value
	}
	return settingsCopy, nil
}

// UpdateSettings updates multiple settings at once and refreshes the cache.
func (s *SettingService) UpdateSettings(settings map[string]string) error {
	if err := s.repo.UpdateSettings(settings); err != nil {
		return err
	}
	s.loadSettings()
	return nil
}

// GetSetting retrieves a single setting value by its key from the cache.
func (s *SettingService) GetSetting(key string) (string, error) {
	s.settingsLock.RLock()
	defer s.settingsLock.RUnlock()
	return s.settings[key], nil
}

// GetInt parses a numeric setting, falling back to def when it is unset or
// not a positive number.
func (s *SettingService) GetInt(key string, def int) int {
	v, _ := s.GetSetting(key)
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// GetBool treats "true", "1", "on" and "yes" as true.
func (s *SettingService) GetBool(key string) bool {
	v, _ := s.GetSetting(key)
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

// RepositoryConfig builds the post repository configuration for dir from
// the author and reading speed settings.
func (s *SettingService) RepositoryConfig(dir string) repository.PostRepositoryConfig {
	cfg := repository.DefaultPostRepositoryConfig()
	cfg.Dir = dir
	cfg.WordsPerMinute = s.GetInt(constants.SettingWordsPerMinute, repository.DefaultWordsPerMinute)

	name, _ := s.GetSetting(constants.SettingAuthorName)
	email, _ := s.GetSetting(constants.SettingAuthorEmail)
	if name != "" || email != "" {
		cfg.DefaultAuthor = models.Author{Name: name, Email: email}
	}
	return cfg
}
