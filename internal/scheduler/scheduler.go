// Package scheduler runs the daily scan, resolve and calibration cycle
// on cron schedules.
package scheduler

import (
	"context"
	"daypicks/internal/logger"
	"daypicks/internal/service"
	"fmt"

	"github.com/robfig/cron/v3"
)

const (
	// weekdays at 09:45 and 12:30 eastern, after the open settles
	scanSchedule = "45 9,12 * * 1-5"
	// hourly through the session
	resolveSchedule = "0 10-16 * * 1-5"
	// after the close, once outcomes for the day are in
	calibrateSchedule = "30 17 * * 1-5"

	resolveLookbackDays = 30
)

type Scheduler struct {
	Cron            *cron.Cron
	ScannerService  service.ScannerService
	ResolverService service.ResolverService
	LearningService service.LearningService
	Ctx             context.Context
}

func NewScheduler(
	ctx context.Context,
	scannerService service.ScannerService,
	resolverService service.ResolverService,
	learningService service.LearningService,
) *Scheduler {
	return &Scheduler{
		Cron:            cron.New(),
		ScannerService:  scannerService,
		ResolverService: resolverService,
		LearningService: learningService,
		Ctx:             ctx,
	}
}

// RegisterAll wires the scan, resolve and calibrate jobs.
func (s *Scheduler) RegisterAll() error {
	if _, err := s.Cron.AddFunc(scanSchedule, s.scanTask); err != nil {
		return fmt.Errorf("failed to register scan task: %w", err)
	}
	if _, err := s.Cron.AddFunc(resolveSchedule, s.resolveTask); err != nil {
		return fmt.Errorf("failed to register resolve task: %w", err)
	}
	if _, err := s.Cron.AddFunc(calibrateSchedule, s.calibrateTask); err != nil {
		return fmt.Errorf("failed to register calibrate task: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.FromContext(s.Ctx).Info("scheduler started")
}

func (s *Scheduler) Stop() {
	s.Cron.Stop()
	logger.FromContext(s.Ctx).Info("scheduler stopped")
}

func (s *Scheduler) scanTask() {
	log := logger.FromContext(s.Ctx)
	result, err := s.ScannerService.Scan(s.Ctx, service.ScanInput{})
	if err != nil {
		log.Errorf("scheduled scan failed: %s", err.Error())
		return
	}
	log.Infof("scheduled scan saved %d picks across %d tickers", result.Saved, result.Scanned)
}

func (s *Scheduler) resolveTask() {
	log := logger.FromContext(s.Ctx)
	result, err := s.ResolverService.Resolve(s.Ctx, resolveLookbackDays)
	if err != nil {
		log.Errorf("scheduled resolve failed: %s", err.Error())
		return
	}
	log.Infof("scheduled resolve closed %d picks (%d winners, %d losers, %d expired)",
		result.Resolved, result.Winners, result.Losers, result.Expired)
}

func (s *Scheduler) calibrateTask() {
	log := logger.FromContext(s.Ctx)
	calibration, err := s.LearningService.Calibrate(s.Ctx)
	if err != nil {
		log.Errorf("scheduled calibration failed: %s", err.Error())
		return
	}
	log.Infof("scheduled calibration covered %d resolved picks", calibration.ResolvedPicks)
}
