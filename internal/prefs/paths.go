// Package prefs persists client-side state: auth tokens, spending limits
// and category order survive indefinitely; view mode and filters last one
// login session. Stores are explicit objects injected where needed, never
// package-level singletons.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the directory for persisted client state,
// honoring XDG_DATA_HOME and falling back to ~/.local/share.
func DefaultDataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "clarity"), nil
}

func readJSONFile(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

func writeJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func removeFile(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
