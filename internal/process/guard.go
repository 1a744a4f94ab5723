package process

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cursor-reset/cursor-reset/internal/message"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusNotRunning
	StatusRunning
	StatusTerminated
	StatusStillRunning
)

func (s Status) String() string {
	switch s {
	case StatusNotRunning:
		return "not running"
	case StatusRunning:
		return "running"
	case StatusTerminated:
		return "terminated"
	case StatusStillRunning:
		return "still running"
	default:
		return "unknown"
	}
}

const DefaultGracePeriod = 1500 * time.Millisecond

type GuardConfig struct {
	// Pattern is matched case-insensitively against process names.
	Pattern string
	// SelfPattern excludes processes whose name contains it, so a tool
	// named after the guarded application never matches itself.
	SelfPattern string
	SelfPID     int
	GracePeriod time.Duration
}

type Guard struct {
	table  ProcessTable
	config GuardConfig
	sleep  func(d time.Duration)
}

func NewGuard(table ProcessTable, config GuardConfig) *Guard {
	if config.GracePeriod <= 0 {
		config.GracePeriod = DefaultGracePeriod
	}
	return &Guard{
		table:  table,
		config: config,
		sleep:  time.Sleep,
	}
}

// Matches queries the process table and returns every qualifying process.
// Nothing is cached between calls.
func (g *Guard) Matches(ctx context.Context) ([]Process, error) {
	candidates, err := g.table.List(ctx, g.config.Pattern)
	if err != nil {
		return nil, err
	}

	pattern := strings.ToLower(g.config.Pattern)
	self := strings.ToLower(g.config.SelfPattern)

	var matched []Process
	for _, p := range candidates {
		name := strings.ToLower(p.Name)
		if p.PID == g.config.SelfPID {
			continue
		}
		if !strings.Contains(name, pattern) {
			continue
		}
		if self != "" && strings.Contains(name, self) {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (g *Guard) Detect(ctx context.Context) (Status, error) {
	matched, err := g.Matches(ctx)
	if err != nil {
		return StatusUnknown, err
	}
	if len(matched) == 0 {
		return StatusNotRunning, nil
	}
	for _, p := range matched {
		message.Debug("Found process %s (pid %d)", p.Name, p.PID)
	}
	return StatusRunning, nil
}

// Terminate kills every qualifying process once, waits for the grace period
// and checks again. It does not retry.
func (g *Guard) Terminate(ctx context.Context) (Status, error) {
	matched, err := g.Matches(ctx)
	if err != nil {
		return StatusUnknown, err
	}
	if len(matched) == 0 {
		return StatusTerminated, nil
	}

	message.Debug("Terminating %d process(es) matching %q", len(matched), g.config.Pattern)
	if err := g.table.Kill(ctx, matched); err != nil {
		// some processes may already be gone, detection below decides
		message.Warning("Termination request reported an error: %v", err)
	}

	g.sleep(g.config.GracePeriod)

	status, err := g.Detect(ctx)
	if err != nil {
		return StatusUnknown, err
	}
	if status == StatusRunning {
		return StatusStillRunning, fmt.Errorf("%w: %s", ErrProcessStillRunning, g.config.Pattern)
	}
	return StatusTerminated, nil
}
