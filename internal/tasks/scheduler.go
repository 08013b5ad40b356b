package tasks

import (
	"log"
	"runtime/debug"
	"strings"
	"sync"

	"folio/internal/constants"
	"folio/internal/repository"
	"folio/internal/services"

	"github.com/robfig/cron/v3"
)

// AuditReport is the outcome of one scheduled content audit.
type AuditReport struct {
	Total     int
	Malformed []repository.LoadResult
	Skipped   []repository.LoadResult
}

type Scheduler struct {
	cron           *cron.Cron
	settingService *services.SettingService
	postService    *services.PostService
	mu             sync.Mutex
	last           *AuditReport
}

func NewScheduler(settingService *services.SettingService, postService *services.PostService) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		settingService: settingService,
		postService:    postService,
	}
}

func (s *Scheduler) Start() {
	log.Println("内容审计调度器正在初始化...")
	s.ReloadTasks()
}

// Stop halts the scheduler and waits for a running audit to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.mu.Unlock()
	<-c.Stop().Done()
}

// ReloadTasks rebuilds the cron table from the current settings. It is
// called at startup and again whenever settings are saved.
func (s *Scheduler) ReloadTasks() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Stop the old cron scheduler and create a new one
	if s.cron != nil {
		s.cron.Stop()
	}
	s.cron = cron.New()

	spec, _ := s.settingService.GetSetting(constants.SettingContentAuditCron)
	spec = strings.TrimSpace(spec)
	if spec == "" {
		log.Println("没有活动的定时任务。")
		return
	}

	if _, err := s.cron.AddFunc(spec, recoveryWrapper(func() { s.RunAudit() })); err != nil {
		log.Printf("添加内容审计任务失败 (%q): %v", spec, err)
		return
	}
	s.cron.Start()
	log.Printf("已成功安排内容审计任务: %s", spec)
}

// RunAudit checks every content file once and logs the broken ones.
func (s *Scheduler) RunAudit() AuditReport {
	results := s.postService.Audit()
	report := AuditReport{Total: len(results)}
	for _, r := range results {
		if r.Status == repository.StatusMalformed {
			report.Malformed = append(report.Malformed, r)
			log.Printf("内容审计: %s: %v", r.Slug, r.Err)
		}
		if r.Status == repository.StatusSkipped {
			report.Skipped = append(report.Skipped, r)
			log.Printf("内容审计: 已跳过 %v", r.Err)
		}
	}
	log.Printf("内容审计完成: 共 %d 篇, %d 篇无法解析", report.Total, len(report.Malformed))

	s.mu.Lock()
	s.last = &report
	s.mu.Unlock()
	return report
}

// LastReport returns the result of the most recent audit, if any ran.
func (s *Scheduler) LastReport() (AuditReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return AuditReport{}, false
	}
	return *s.last, true
}

// Entries reports how many jobs are scheduled.
func (s *Scheduler) Entries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cron.Entries())
}

func recoveryWrapper(job func()) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("定时任务执行时发生 panic: %v\n%s", r, debug.Stack())
			}
		}()
		job()
	}
}
