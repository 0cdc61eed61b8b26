package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func editorCmd() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := strings.Fields(os.Getenv(env)); len(e) > 0 {
			return e
		}
	}
	return []string{"vi"}
}

// Open runs the user's editor on filepath and waits for it to exit.
func Open(filepath string) error {
	argv := editorCmd()
	cmd := exec.Command(argv[0], append(argv[1:], filepath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", strings.Join(argv, " "), err)
	}
	return nil
}

// Edit writes content to a temp file named after pattern, opens it in the
// editor and returns what was saved. The temp file is removed afterwards.
func Edit(content []byte, pattern string) ([]byte, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(content); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", path, err)
	}
	if err := Open(path); err != nil {
		return nil, err
	}
	out, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}
