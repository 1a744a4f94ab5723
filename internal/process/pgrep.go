package process

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// unixTable drives pgrep and kill, available on both macOS and Linux.
type unixTable struct {
	runner    Runner
	pgrepArgs []string
}

func newLinuxTable(runner Runner) ProcessTable {
	return &unixTable{runner: runner, pgrepArgs: []string{"-i", "-l"}}
}

// newDarwinTable adds -a: macOS pgrep skips the caller's ancestors otherwise,
// which hides the application when the tool runs in its integrated terminal.
// On Linux -a means "show the full command line" instead.
func newDarwinTable(runner Runner) ProcessTable {
	return &unixTable{runner: runner, pgrepArgs: []string{"-a", "-i", "-l"}}
}

func (t *unixTable) List(ctx context.Context, pattern string) ([]Process, error) {
	args := append(slices.Clone(t.pgrepArgs), pattern)
	output, err := t.runner.Run(ctx, "pgrep", args...)
	if err != nil {
		// pgrep exits with 1 when no process matched
		if exitCode(err) == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return parsePgrep(output)
}

func (t *unixTable) Kill(ctx context.Context, processes []Process) error {
	if len(processes) == 0 {
		return nil
	}
	args := []string{"-9"}
	for _, p := range processes {
		args = append(args, strconv.Itoa(p.PID))
	}
	if _, err := t.runner.Run(ctx, "kill", args...); err != nil {
		return fmt.Errorf("failed to kill processes: %w", err)
	}
	return nil
}

// parsePgrep reads "pid name" lines as printed by pgrep -l.
func parsePgrep(output []byte) ([]Process, error) {
	var processes []Process
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pidField, name, _ := strings.Cut(line, " ")
		pid, err := strconv.Atoi(pidField)
		if err != nil {
			return nil, fmt.Errorf("%w: unexpected pgrep output %q", ErrQueryFailed, line)
		}
		processes = append(processes, Process{Name: strings.TrimSpace(name), PID: pid})
	}
	return processes, nil
}
