package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_YAMLLabels(t *testing.T) {
	doc := `
labels:
  - name: bug
    color: d73a49
    description: Something isn't working
  - name: feature
    color: a2eeef
`

	cfg, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)

	require.Len(t, cfg.Labels, 2)
	assert.Equal(t, "bug", cfg.Labels[0].Name)
	assert.Equal(t, "d73a49", cfg.Labels[0].Color)
	require.NotNil(t, cfg.Labels[0].Description)
	assert.Equal(t, "Something isn't working", *cfg.Labels[0].Description)
	assert.Equal(t, "feature", cfg.Labels[1].Name)
	assert.Nil(t, cfg.Labels[1].Description)
	assert.True(t, cfg.HasActions())
}

func TestDecode_TOMLLabels(t *testing.T) {
	doc := `
[[labels]]
name = "bug"
color = "d73a49"
description = "Something isn't working"

[[labels]]
name = "feature"
color = "a2eeef"
`

	cfg, err := Decode([]byte(doc), FormatTOML)
	require.NoError(t, err)

	require.Len(t, cfg.Labels, 2)
	assert.Equal(t, "bug", cfg.Labels[0].Name)
	assert.Equal(t, "d73a49", cfg.Labels[0].Color)
	assert.Equal(t, "feature", cfg.Labels[1].Name)
}

func TestDecode_RenameCandidates(t *testing.T) {
	doc := `
labels:
  - name: needs-help
    color: "008672"
    description: Extra attention needed
    update_if_match: ["help wanted", "help-needed"]
`

	cfg, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)

	require.Len(t, cfg.Labels, 1)
	assert.Equal(t, "needs-help", cfg.Labels[0].Name)
	assert.Equal(t, []string{"help wanted", "help-needed"}, cfg.Labels[0].UpdateIfMatch)
}

func TestDecode_UpdateOnlyDeclaration(t *testing.T) {
	doc := `
labels:
  - name: bug
    description: Updated description
`

	cfg, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)

	require.Len(t, cfg.Labels, 1)
	assert.False(t, cfg.Labels[0].HasColor())
	require.NotNil(t, cfg.Labels[0].Description)
	assert.Equal(t, "Updated description", *cfg.Labels[0].Description)
}

func TestDecode_DeleteList(t *testing.T) {
	doc := `
delete: [wontfix, invalid]
`

	cfg, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"wontfix", "invalid"}, cfg.Delete)
	assert.Empty(t, cfg.Labels)
	assert.True(t, cfg.HasActions())
}

func TestDecode_Mixed(t *testing.T) {
	doc := `
delete: [duplicate]
labels:
  - name: priority-high
    color: d73a49
  - name: bug
    description: Updated description
`

	cfg, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)

	assert.Len(t, cfg.Labels, 2)
	assert.Len(t, cfg.Delete, 1)
}

func TestDecode_ConflictFlags(t *testing.T) {
	doc := `
labels:
  - name: bug
    color: d73a49
    skip_if_exists: true
  - name: feature
    color: a2eeef
    update_if_exists: true
  - name: enhancement
    color: 84b6eb
`

	cfg, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)

	require.Len(t, cfg.Labels, 3)
	assert.True(t, cfg.Labels[0].SkipIfExists)
	assert.False(t, cfg.Labels[0].UpdateIfExists)
	assert.False(t, cfg.Labels[1].SkipIfExists)
	assert.True(t, cfg.Labels[1].UpdateIfExists)
	assert.False(t, cfg.Labels[2].SkipIfExists)
	assert.False(t, cfg.Labels[2].UpdateIfExists)
}

func TestDecode_MissingName(t *testing.T) {
	doc := `
labels:
  - color: d73a49
`

	_, err := Decode([]byte(doc), FormatYAML)
	require.Error(t, err)

	var invalid *InvalidConfigError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "name")
}

func TestDecode_MalformedDocument(t *testing.T) {
	_, err := Decode([]byte("labels: [unclosed"), FormatYAML)
	require.Error(t, err)

	var invalid *InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}

func TestDecode_EmptyDocumentIsValidNoOp(t *testing.T) {
	cfg, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	assert.False(t, cfg.HasActions())
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("labels.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("LABELS.TOML"))
	assert.Equal(t, FormatYAML, FormatForPath("labels.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("labels.yml"))
	assert.Equal(t, FormatYAML, FormatForPath("labels"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "labels.yaml"))
	require.Error(t, err)

	var invalid *InvalidConfigError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "read")
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.toml")
	doc := `
delete = ["stale"]

[[labels]]
name = "bug"
color = "d73a49"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Labels, 1)
	assert.Equal(t, "bug", cfg.Labels[0].Name)
	assert.Equal(t, []string{"stale"}, cfg.Delete)
}

func TestResolveDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "labels.toml"), []byte(""), 0o644))

	path, err := ResolveDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "labels.toml"), path)

	// yaml takes precedence over toml when both exist
	require.NoError(t, os.WriteFile(filepath.Join(dir, "labels.yaml"), []byte(""), 0o644))
	path, err = ResolveDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "labels.yaml"), path)
}

func TestResolveDefault_NoneFound(t *testing.T) {
	_, err := ResolveDefault(t.TempDir())
	require.Error(t, err)

	var invalid *InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}
