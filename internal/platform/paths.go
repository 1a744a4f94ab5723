package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const storageFileName = "storage.json"

// StorageFile returns the location of the identity record of appName.
func StorageFile(env Env, appName string) (string, error) {
	switch env.GOOS {
	case Windows:
		return filepath.Join(env.AppData, appName, "User", "globalStorage", storageFileName), nil
	case Darwin:
		return filepath.Join(env.HomeDir, "Library", "Application Support", appName, "User", "globalStorage", storageFileName), nil
	case Linux:
		return filepath.Join(env.HomeDir, ".config", appName, "User", "globalStorage", storageFileName), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, env.GOOS)
	}
}

// InstallCandidates lists the locations where appName is usually installed.
func InstallCandidates(env Env, appName string) ([]string, error) {
	switch env.GOOS {
	case Windows:
		return []string{filepath.Join(env.LocalAppData, "Programs", appName, appName+".exe")}, nil
	case Darwin:
		return []string{filepath.Join("/Applications", appName+".app")}, nil
	case Linux:
		lower := strings.ToLower(appName)
		return []string{
			filepath.Join("/usr/share", lower),
			filepath.Join("/opt", lower),
			filepath.Join(env.HomeDir, ".local", "share", lower),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, env.GOOS)
	}
}

// IsInstalled reports whether any of the install candidates or extraPaths
// exists.
func IsInstalled(env Env, appName string, extraPaths []string) (bool, error) {
	candidates, err := InstallCandidates(env, appName)
	if err != nil {
		return false, err
	}
	paths := append(slices.Clone(extraPaths), candidates...)
	for _, p := range paths {
		if p == "" {
			continue
		}
		_, err := os.Stat(p)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("failed to check install path %s: %w", p, err)
		}
	}
	return false, nil
}
