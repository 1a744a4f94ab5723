// Package platform captures the host operating system environment and
// resolves the per-user locations the reset works against.
package platform

import (
	"fmt"
	"os"
	"runtime"
)

const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Env is a snapshot of the OS environment lookups used for path
// resolution. It is read once at startup so the resolvers can be exercised
// with arbitrary values in tests.
type Env struct {
	GOOS         string
	HomeDir      string
	AppData      string
	LocalAppData string
}

func EnvFromOS() (Env, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Env{}, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return Env{
		GOOS:         runtime.GOOS,
		HomeDir:      home,
		AppData:      os.Getenv("APPDATA"),
		LocalAppData: os.Getenv("LOCALAPPDATA"),
	}, nil
}

func IsSupported(goos string) bool {
	switch goos {
	case Windows, Darwin, Linux:
		return true
	}
	return false
}
