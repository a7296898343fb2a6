package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salembot/neoraffle/internal/notify"
	"github.com/salembot/neoraffle/internal/service/drawservice"
)

type stubDrawRunner struct {
	report *drawservice.Report
	err    error
}

func (s *stubDrawRunner) DrawWinners(context.Context) (*drawservice.Report, error) {
	return s.report, s.err
}

type stubNotifier struct {
	events []notify.Event
}

func (s *stubNotifier) Notify(event notify.Event) { s.events = append(s.events, event) }
func (s *stubNotifier) Close()                    {}

func TestStart(t *testing.T) {
	scheduler := New(&stubDrawRunner{}, notify.Noop{})

	assert.NoError(t, scheduler.Start(""))
	assert.Error(t, scheduler.Start("not a cron expression"))
	assert.NoError(t, scheduler.Start("0 3 * * *"))
	scheduler.Stop()
}

func TestRunDrawNotifies(t *testing.T) {
	report := &drawservice.Report{RunID: "run-1"}
	notifier := &stubNotifier{}
	scheduler := New(&stubDrawRunner{report: report}, notifier)

	scheduler.runDraw()

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.EventDraw, notifier.events[0].Type)
	assert.Equal(t, report, notifier.events[0].Payload)
}

func TestRunDrawFailureSkipsNotification(t *testing.T) {
	notifier := &stubNotifier{}
	scheduler := New(&stubDrawRunner{err: errors.New("db error")}, notifier)

	scheduler.runDraw()

	assert.Empty(t, notifier.events)
}
