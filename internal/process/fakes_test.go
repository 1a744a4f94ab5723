package process

import (
	"context"
	"fmt"
	"strings"
)

type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e *exitError) ExitCode() int { return e.code }

type runnerCall struct {
	Name string
	Args []string
}

type fakeRunner struct {
	RunFunc func(name string, args ...string) ([]byte, error)
	Calls   []runnerCall
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.Calls = append(r.Calls, runnerCall{Name: name, Args: args})
	return r.RunFunc(name, args...)
}

func (r *fakeRunner) commandLines() []string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = strings.Join(append([]string{c.Name}, c.Args...), " ")
	}
	return lines
}

// fakeTable keeps a mutable process list. Kill removes the killed PIDs unless
// survive is set.
type fakeTable struct {
	processes []Process
	listErr   error
	killErr   error
	survive   bool
	lists     int
	kills     [][]Process
}

func (f *fakeTable) List(ctx context.Context, pattern string) ([]Process, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return filterByName(f.processes, pattern), nil
}

func (f *fakeTable) Kill(ctx context.Context, processes []Process) error {
	f.kills = append(f.kills, processes)
	if !f.survive {
		killed := map[int]bool{}
		for _, p := range processes {
			killed[p.PID] = true
		}
		var remaining []Process
		for _, p := range f.processes {
			if !killed[p.PID] {
				remaining = append(remaining, p)
			}
		}
		f.processes = remaining
	}
	return f.killErr
}
