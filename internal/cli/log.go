package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/prebuild/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Pre-compiled 5 bundles (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// hookLogger forwards pipeline and ledger events to the debug log.
type hookLogger struct {
	logger *log.Logger
}

func (h hookLogger) OnStageStart(_ context.Context, stage, env string) {
	h.logger.Debug("stage started", "stage", stage, "env", env)
}

func (h hookLogger) OnStageComplete(_ context.Context, stage, env string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("stage failed", "stage", stage, "env", env, "duration", d, "err", err)
		return
	}
	h.logger.Debug("stage finished", "stage", stage, "env", env, "duration", d)
}

func (h hookLogger) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("ledger hit", "type", keyType)
}

func (h hookLogger) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("ledger miss", "type", keyType)
}

func (h hookLogger) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("ledger write", "type", keyType, "size", size)
}

// installHooks routes observability events to l.
func installHooks(l *log.Logger) {
	h := hookLogger{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}
