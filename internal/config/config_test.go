package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), ".cursor-reset"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	grace, err := config.Grace()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, grace)
}

func TestLoad(t *testing.T) {
	var tests = []struct {
		name     string
		content  string
		expected Config
		wantErr  bool
	}{
		{
			name: "overrides",
			content: `appName: Cursor Nightly
processPattern: cursor nightly
gracePeriod: 3s
installPaths:
  - /opt/cursor-nightly
`,
			expected: Config{
				AppName:        "Cursor Nightly",
				ProcessPattern: "cursor nightly",
				SelfPattern:    DefaultSelfPattern,
				GracePeriod:    "3s",
				InstallPaths:   []string{"/opt/cursor-nightly"},
			},
		},
		{
			name:     "empty file",
			content:  "",
			expected: Default(),
		},
		{
			name:    "invalid yaml",
			content: "appName: [unterminated",
			wantErr: true,
		},
		{
			name:    "invalid grace period",
			content: "gracePeriod: soon",
			wantErr: true,
		},
		{
			name:    "negative grace period",
			content: "gracePeriod: -1s",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".cursor-reset")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			config, err := Load(path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, config)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/me", ".cursor-reset"), DefaultPath("/home/me"))
}
