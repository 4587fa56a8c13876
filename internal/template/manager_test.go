package template

import (
	"os"
	"path/filepath"
	"testing"

	"labelctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Builtins(t *testing.T) {
	m := NewManagerWithDirs()

	infos, err := m.List()
	require.NoError(t, err)
	require.NotEmpty(t, infos)

	byName := make(map[string]Info)
	for _, info := range infos {
		byName[info.Name] = info
	}

	for _, name := range []string{"standard", "semantic", "priority", "priority-prefixed", "type", "area", "operational"} {
		info, ok := byName[name]
		require.True(t, ok, "missing built-in template %q", name)
		assert.True(t, info.Builtin())
		assert.NotEmpty(t, info.Description)
	}

	// Sorted by name.
	for i := 1; i < len(infos); i++ {
		assert.Less(t, infos[i-1].Name, infos[i].Name)
	}
}

func TestLoad_Builtin(t *testing.T) {
	m := NewManagerWithDirs()

	cfg, err := m.Load("standard")
	require.NoError(t, err)

	require.NotEmpty(t, cfg.Labels)
	names := make([]string, 0, len(cfg.Labels))
	for _, d := range cfg.Labels {
		names = append(names, d.Name)
	}
	assert.Contains(t, names, "bug")
	assert.Contains(t, names, "feature")
	assert.NotEmpty(t, cfg.Delete)
}

func TestLoad_AllBuiltinsParse(t *testing.T) {
	m := NewManagerWithDirs()

	infos, err := m.List()
	require.NoError(t, err)

	for _, info := range infos {
		cfg, err := m.Load(info.Name)
		require.NoError(t, err, "template %q", info.Name)
		assert.True(t, cfg.HasActions(), "template %q declares nothing", info.Name)
	}
}

func TestLoad_NotFound(t *testing.T) {
	m := NewManagerWithDirs()

	_, err := m.Load("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestUserTemplateOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	doc := `
description: My house style
labels:
  - name: custom
    color: "000000"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "standard.yaml"), []byte(doc), 0o644))

	m := NewManagerWithDirs(dir)

	cfg, err := m.Load("standard")
	require.NoError(t, err)
	require.Len(t, cfg.Labels, 1)
	assert.Equal(t, "custom", cfg.Labels[0].Name)

	infos, err := m.List()
	require.NoError(t, err)
	for _, info := range infos {
		if info.Name == "standard" {
			assert.False(t, info.Builtin())
			assert.Equal(t, "My house style", info.Description)
		}
	}
}

func TestUserTemplateTOML(t *testing.T) {
	dir := t.TempDir()
	doc := `
description = "TOML template"

[[labels]]
name = "x"
color = "000000"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "house.toml"), []byte(doc), 0o644))

	m := NewManagerWithDirs(dir)

	data, format, err := m.Raw("house")
	require.NoError(t, err)
	assert.Equal(t, config.FormatTOML, format)
	assert.NotEmpty(t, data)

	cfg, err := m.Load("house")
	require.NoError(t, err)
	require.Len(t, cfg.Labels, 1)
	assert.Equal(t, "x", cfg.Labels[0].Name)
}

func TestEarlierDirectoryWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(first, "house.yaml"),
		[]byte("labels:\n  - {name: first, color: \"000000\"}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "house.yaml"),
		[]byte("labels:\n  - {name: second, color: \"000000\"}\n"), 0o644))

	m := NewManagerWithDirs(first, second)

	cfg, err := m.Load("house")
	require.NoError(t, err)
	require.Len(t, cfg.Labels, 1)
	assert.Equal(t, "first", cfg.Labels[0].Name)
}
