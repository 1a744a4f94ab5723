package process

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// windowsTable has no kill-by-pattern primitive: it lists the whole task
// table, filters it, and terminates the resulting PIDs together with their
// child processes.
type windowsTable struct {
	runner Runner
}

func newWindowsTable(runner Runner) ProcessTable {
	return &windowsTable{runner: runner}
}

func (t *windowsTable) List(ctx context.Context, pattern string) ([]Process, error) {
	output, err := t.runner.Run(ctx, "tasklist", "/FO", "CSV", "/NH")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	all, err := parseTasklist(output)
	if err != nil {
		return nil, err
	}
	return filterByName(all, pattern), nil
}

func (t *windowsTable) Kill(ctx context.Context, processes []Process) error {
	if len(processes) == 0 {
		return nil
	}
	args := []string{"/F", "/T"}
	for _, p := range processes {
		args = append(args, "/PID", strconv.Itoa(p.PID))
	}
	if _, err := t.runner.Run(ctx, "taskkill", args...); err != nil {
		return fmt.Errorf("failed to kill processes: %w", err)
	}
	return nil
}

// parseTasklist reads `tasklist /FO CSV /NH` output. Each record starts with
// the image name and the PID.
func parseTasklist(output []byte) ([]Process, error) {
	reader := csv.NewReader(bytes.NewReader(output))
	reader.FieldsPerRecord = -1

	var processes []Process
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse tasklist output: %w", ErrQueryFailed, err)
		}
		if len(record) < 2 {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			continue
		}
		processes = append(processes, Process{Name: strings.TrimSpace(record[0]), PID: pid})
	}
	return processes, nil
}

func filterByName(processes []Process, pattern string) []Process {
	pattern = strings.ToLower(pattern)
	var matched []Process
	for _, p := range processes {
		if strings.Contains(strings.ToLower(p.Name), pattern) {
			matched = append(matched, p)
		}
	}
	return matched
}
