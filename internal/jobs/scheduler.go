// Package jobs runs the scheduled event close-out.
package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/salembot/neoraffle/internal/notify"
	"github.com/salembot/neoraffle/internal/service/drawservice"
)

type DrawRunner interface {
	DrawWinners(ctx context.Context) (*drawservice.Report, error)
}

type Scheduler struct {
	cron        *cron.Cron
	drawService DrawRunner
	notifier    notify.Notifier
}

func New(drawService DrawRunner, notifier notify.Notifier) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		drawService: drawService,
		notifier:    notifier,
	}
}

// Start registers the close-out draw under the given cron expression. An
// empty expression leaves the scheduler idle; the draw can still be triggered
// over the API.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		zap.L().Info("close-out schedule not configured, draws are manual only")
		return nil
	}

	_, err := s.cron.AddFunc(spec, s.runDraw)
	if err != nil {
		return err
	}
	s.cron.Start()
	zap.L().Info("close-out schedule started", zap.String("spec", spec))
	return nil
}

// Stop halts the schedule and waits for a running draw to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runDraw() {
	report, err := s.drawService.DrawWinners(context.Background())
	if err != nil {
		zap.L().Error("scheduled draw failed", zap.Error(err))
		return
	}
	s.notifier.Notify(notify.Event{Type: notify.EventDraw, Payload: report})
}
