package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("default_file: /tmp/todo.json\ndefault_sort: due\n"), 0644)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/todo.json", cfg.DefaultFile)
	assert.Equal(t, "due", cfg.DefaultSort)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DefaultFile)
	assert.Equal(t, "", cfg.DefaultSort)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("{{bad yaml"), 0644)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidSort(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("default_sort: alphabetical\n"), 0644)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort key")
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{DefaultFile: "work.json", DefaultSort: "priority"}

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")
	require.NoError(t, Save(dir, &Config{}))
	_, err := os.Stat(filepath.Join(dir, FileName))
	assert.NoError(t, err)
}

func TestSet(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Set("default_sort", "rank"))
	require.NoError(t, cfg.Set("default_file", "home.json"))
	assert.Equal(t, "rank", cfg.DefaultSort)
	assert.Equal(t, "home.json", cfg.DefaultFile)
}

func TestSet_InvalidValueLeavesConfig(t *testing.T) {
	cfg := &Config{DefaultSort: "due"}
	assert.Error(t, cfg.Set("default_sort", "random"))
	assert.Equal(t, "due", cfg.DefaultSort)
}

func TestSet_UnknownKey(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Set("color", "blue"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"default_file", "default_sort"}, Keys())
}

func TestSet_SortAliases(t *testing.T) {
	for _, v := range []string{"date", "due_date", "due", "none", "priority", "rank", ""} {
		cfg := &Config{}
		assert.NoError(t, cfg.Set("default_sort", v), v)
	}
}
