package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rogersnm/taskpad/internal/model"
	"gopkg.in/yaml.v3"
)

// Parse reads YAML frontmatter and body from r into T. The body keeps its
// whitespace apart from the blank separator line and one final newline,
// the parts Marshal adds.
func Parse[T any](r io.Reader) (T, string, error) {
	var meta T
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return meta, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	s := strings.ReplaceAll(string(body), "\r\n", "\n")
	s = strings.TrimPrefix(s, "\n")
	return meta, strings.TrimSuffix(s, "\n"), nil
}

// Marshal serializes meta as YAML frontmatter followed by body.
func Marshal[T any](meta T, body string) ([]byte, error) {
	yamlBytes, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

// MarshalTask renders t as frontmatter with the description as the body.
// The body is always terminated by one extra newline so ParseTask can
// restore the description exactly.
func MarshalTask(t model.Task) ([]byte, error) {
	body := t.Description
	if body != "" {
		body += "\n"
	}
	return Marshal(t, body)
}

// ParseTask is the inverse of MarshalTask. The result is validated.
func ParseTask(r io.Reader) (model.Task, error) {
	t, body, err := Parse[model.Task](r)
	if err != nil {
		return model.Task{}, err
	}
	t.Description = body
	if err := t.Validate(); err != nil {
		return model.Task{}, err
	}
	return t, nil
}
