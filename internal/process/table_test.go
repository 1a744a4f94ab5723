package process

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cursor-reset/cursor-reset/internal/platform"
)

func TestNewProcessTable(t *testing.T) {
	for _, goos := range []string{platform.Windows, platform.Darwin, platform.Linux} {
		table, err := NewProcessTable(goos, &fakeRunner{})
		require.NoError(t, err, goos)
		assert.NotNil(t, table)
	}

	_, err := NewProcessTable("plan9", &fakeRunner{})
	assert.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
}

func TestUnixTableList(t *testing.T) {
	var tests = []struct {
		name      string
		output    string
		err       error
		expected  []Process
		wantQuery bool
	}{
		{
			name:   "matches",
			output: "412 Cursor\n413 Cursor Helper (Renderer)\n\n",
			expected: []Process{
				{Name: "Cursor", PID: 412},
				{Name: "Cursor Helper (Renderer)", PID: 413},
			},
		},
		{
			name: "no match",
			err:  &exitError{code: 1},
		},
		{
			name:      "pgrep failure",
			err:       &exitError{code: 3},
			wantQuery: true,
		},
		{
			name:      "pgrep missing",
			err:       errors.New("executable file not found in $PATH"),
			wantQuery: true,
		},
		{
			name:      "garbage output",
			output:    "not-a-pid cursor\n",
			wantQuery: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runner := &fakeRunner{RunFunc: func(name string, args ...string) ([]byte, error) {
				return []byte(tc.output), tc.err
			}}
			table, err := NewProcessTable(platform.Linux, runner)
			require.NoError(t, err)

			processes, err := table.List(context.Background(), "cursor")
			if tc.wantQuery {
				assert.ErrorIs(t, err, ErrQueryFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, processes)
			assert.Equal(t, []string{"pgrep -i -l cursor"}, runner.commandLines())
		})
	}
}

func TestPgrepCommandLine(t *testing.T) {
	var tests = []struct {
		goos     string
		expected string
	}{
		{goos: platform.Linux, expected: "pgrep -i -l cursor"},
		{goos: platform.Darwin, expected: "pgrep -a -i -l cursor"},
	}

	for _, tc := range tests {
		t.Run(tc.goos, func(t *testing.T) {
			runner := &fakeRunner{RunFunc: func(name string, args ...string) ([]byte, error) {
				return []byte("412 Cursor\n"), nil
			}}
			table, err := NewProcessTable(tc.goos, runner)
			require.NoError(t, err)

			processes, err := table.List(context.Background(), "cursor")
			require.NoError(t, err)
			assert.Equal(t, []Process{{Name: "Cursor", PID: 412}}, processes)

			// a second call must not accumulate arguments
			_, err = table.List(context.Background(), "cursor")
			require.NoError(t, err)
			assert.Equal(t, []string{tc.expected, tc.expected}, runner.commandLines())
		})
	}
}

func TestUnixTableKill(t *testing.T) {
	runner := &fakeRunner{RunFunc: func(name string, args ...string) ([]byte, error) {
		return nil, nil
	}}
	table, err := NewProcessTable(platform.Darwin, runner)
	require.NoError(t, err)

	require.NoError(t, table.Kill(context.Background(), nil))
	assert.Empty(t, runner.Calls)

	require.NoError(t, table.Kill(context.Background(), []Process{{Name: "Cursor", PID: 10}, {Name: "Cursor Helper", PID: 11}}))
	assert.Equal(t, []string{"kill -9 10 11"}, runner.commandLines())
}

func TestWindowsTableList(t *testing.T) {
	output := `"System Idle Process","0","Services","0","8 K"
"Cursor.exe","5120","Console","1","210,432 K"
"cursor-reset.exe","6000","Console","1","9,100 K"
"explorer.exe","4242","Console","1","120,000 K"
"Cursor.exe","5188","Console","1","98,112 K"
`
	runner := &fakeRunner{RunFunc: func(name string, args ...string) ([]byte, error) {
		return []byte(output), nil
	}}
	table, err := NewProcessTable(platform.Windows, runner)
	require.NoError(t, err)

	processes, err := table.List(context.Background(), "cursor")
	require.NoError(t, err)
	assert.Equal(t, []Process{
		{Name: "Cursor.exe", PID: 5120},
		{Name: "cursor-reset.exe", PID: 6000},
		{Name: "Cursor.exe", PID: 5188},
	}, processes)
	assert.Equal(t, []string{"tasklist /FO CSV /NH"}, runner.commandLines())
}

func TestWindowsTableListFailure(t *testing.T) {
	runner := &fakeRunner{RunFunc: func(name string, args ...string) ([]byte, error) {
		return nil, &exitError{code: 1}
	}}
	table, err := NewProcessTable(platform.Windows, runner)
	require.NoError(t, err)

	_, err = table.List(context.Background(), "cursor")
	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestWindowsTableKill(t *testing.T) {
	runner := &fakeRunner{RunFunc: func(name string, args ...string) ([]byte, error) {
		return nil, nil
	}}
	table, err := NewProcessTable(platform.Windows, runner)
	require.NoError(t, err)

	require.NoError(t, table.Kill(context.Background(), []Process{{Name: "Cursor.exe", PID: 5120}, {Name: "Cursor.exe", PID: 5188}}))
	assert.Equal(t, []string{"taskkill /F /T /PID 5120 /PID 5188"}, runner.commandLines())
}
