package repofile

import (
	"os"
	"path/filepath"
	"strings"
)

const FileName = ".taskpad"

// Find walks up from startDir looking for a .taskpad file and returns the
// task file it names, resolved against the directory holding the marker.
// Returns ("", "", nil) if not found.
func Find(startDir string) (taskFile, dir string, err error) {
	dir = startDir
	for {
		target, err := Read(dir)
		if err != nil {
			return "", "", err
		}
		if target != "" {
			return Resolve(dir, target), dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", nil
		}
		dir = parent
	}
}

// Resolve joins a relative target onto dir. Absolute targets are returned as is.
func Resolve(dir, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(dir, target)
}

// Write records taskFile in dir/.taskpad.
func Write(dir, taskFile string) error {
	return os.WriteFile(filepath.Join(dir, FileName), []byte(taskFile+"\n"), 0644)
}

// Read reads and trims the .taskpad file in dir.
// Returns ("", nil) if the file does not exist.
func Read(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes dir/.taskpad. It reports false if there was nothing to remove.
func Remove(dir string) (bool, error) {
	if err := os.Remove(filepath.Join(dir, FileName)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
