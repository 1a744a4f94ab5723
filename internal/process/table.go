package process

import (
	"context"
	"fmt"

	"github.com/cursor-reset/cursor-reset/internal/platform"
)

type Process struct {
	Name string
	PID  int
}

// ProcessTable is the OS capability the guard is built on. List returns an
// empty slice and a nil error when nothing matches; any other failure is an
// error wrapping ErrQueryFailed.
type ProcessTable interface {
	List(ctx context.Context, pattern string) ([]Process, error)
	Kill(ctx context.Context, processes []Process) error
}

type tableFactoryFunc func(runner Runner) ProcessTable

func getTableFactory() map[string]tableFactoryFunc {
	return map[string]tableFactoryFunc{
		platform.Windows: newWindowsTable,
		platform.Darwin:  newDarwinTable,
		platform.Linux:   newLinuxTable,
	}
}

func NewProcessTable(goos string, runner Runner) (ProcessTable, error) {
	factory, ok := getTableFactory()[goos]
	if !ok {
		return nil, fmt.Errorf("%w: %s", platform.ErrUnsupportedPlatform, goos)
	}
	return factory(runner), nil
}
