package tasks

import (
	"os"
	"path/filepath"
	"testing"

	"folio/internal/constants"
	"folio/internal/render"
	"folio/internal/repository"
	"folio/internal/services"
	"folio/internal/utils"

	"gotest.tools/v3/assert"
)

func newTestScheduler(t *testing.T) (*Scheduler, *services.SettingService, string) {
	t.Helper()
	db, err := utils.InitDatabase(filepath.Join(t.TempDir(), "test.db"))
	assert.NilError(t, err)
	settings := services.NewSettingService(repository.NewSettingRepository(db))

	dir := t.TempDir()
	repo := repository.NewPostRepository(settings.RepositoryConfig(dir))
	posts := services.NewPostService(repo, render.New(), settings)

	s := NewScheduler(settings, posts)
	t.Cleanup(s.Stop)
	return s, settings, dir
}

func TestRunAudit(t *testing.T) {
	s, _, dir := newTestScheduler(t)
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "good.mdx"), []byte("---\ntitle: Good\n---\nbody"), 0o644))
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "bad.mdx"), []byte("---\ntitle: [\n---\n"), 0o644))
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "Draft Notes.mdx"), []byte("body"), 0o644))

	_, ok := s.LastReport()
	assert.Assert(t, !ok)

	report := s.RunAudit()
	assert.Equal(t, report.Total, 3)
	assert.Equal(t, len(report.Malformed), 1)
	assert.Equal(t, report.Malformed[0].Slug, "bad")
	assert.Equal(t, len(report.Skipped), 1)
	assert.Equal(t, report.Skipped[0].Slug, "Draft Notes")

	last, ok := s.LastReport()
	assert.Assert(t, ok)
	assert.Equal(t, last.Total, 3)
}

func TestReloadTasks(t *testing.T) {
	s, settings, _ := newTestScheduler(t)

	s.Start()
	assert.Equal(t, s.Entries(), 0)

	assert.NilError(t, settings.UpdateSettings(map[string]string{constants.SettingContentAuditCron: "@every 1h"}))
	s.ReloadTasks()
	assert.Equal(t, s.Entries(), 1)

	assert.NilError(t, settings.UpdateSettings(map[string]string{constants.SettingContentAuditCron: "not a cron spec"}))
	s.ReloadTasks()
	assert.Equal(t, s.Entries(), 0)
}

func TestRecoveryWrapper(t *testing.T) {
	ran := false
	recoveryWrapper(func() {
		ran = true
		panic("boom")
	})()
	assert.Assert(t, ran)
}
