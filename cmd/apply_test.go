package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"labelctl/internal/cli"
	"labelctl/internal/label"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory label.Store for command-level tests.
type memStore struct {
	labels map[string]label.Label
}

func newMemStore(labels ...label.Label) *memStore {
	s := &memStore{labels: make(map[string]label.Label)}
	for _, l := range labels {
		s.labels[l.Name] = l
	}
	return s
}

func (s *memStore) List(ctx context.Context) ([]label.Label, error) {
	out := make([]label.Label, 0, len(s.labels))
	for _, l := range s.labels {
		out = append(out, l)
	}
	return out, nil
}

func (s *memStore) Get(ctx context.Context, name string) (*label.Label, error) {
	l, ok := s.labels[name]
	if !ok {
		return nil, label.ErrNotFound
	}
	return &l, nil
}

func (s *memStore) Create(ctx context.Context, req label.CreateRequest) (*label.Label, error) {
	if _, ok := s.labels[req.Name]; ok {
		return nil, label.ErrAlreadyExists
	}
	l := label.Label{Name: req.Name, Color: req.Color}
	if req.Description != nil {
		l.Description = *req.Description
	}
	s.labels[req.Name] = l
	return &l, nil
}

func (s *memStore) Update(ctx context.Context, name string, req label.UpdateRequest) (*label.Label, error) {
	l, ok := s.labels[name]
	if !ok {
		return nil, label.ErrNotFound
	}
	if req.NewName != "" {
		delete(s.labels, name)
		l.Name = req.NewName
	}
	if req.Color != "" {
		l.Color = req.Color
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	s.labels[l.Name] = l
	return &l, nil
}

func (s *memStore) Delete(ctx context.Context, name string) error {
	if _, ok := s.labels[name]; !ok {
		return label.ErrNotFound
	}
	delete(s.labels, name)
	return nil
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newCaptureCmd(out *strings.Builder) *cobra.Command {
	c := &cobra.Command{}
	c.SetOut(out)
	c.SetErr(out)
	return c
}

func TestApplyDocument_CreatesAndDeletes(t *testing.T) {
	path := writeDocument(t, `
labels:
  - name: bug
    color: d73a4a
delete:
  - wontfix
`)
	store := newMemStore(label.Label{Name: "wontfix", Color: "ffffff"})

	var out strings.Builder
	err := applyDocument(context.Background(), newCaptureCmd(&out), path, store)
	require.NoError(t, err)

	assert.Contains(t, store.labels, "bug")
	assert.NotContains(t, store.labels, "wontfix")
	assert.Contains(t, out.String(), "Created")
	assert.Contains(t, out.String(), "Deleted")
	assert.Contains(t, out.String(), "Summary")
}

func TestApplyDocument_FailuresReturnActionsFailedError(t *testing.T) {
	path := writeDocument(t, `
labels:
  - name: bug
    color: d73a4a
`)
	// bug already exists and no conflict policy is set.
	store := newMemStore(label.Label{Name: "bug", Color: "000000"})

	var out strings.Builder
	err := applyDocument(context.Background(), newCaptureCmd(&out), path, store)

	var actionsFailed *cli.ActionsFailedError
	require.ErrorAs(t, err, &actionsFailed)
	assert.Equal(t, 1, actionsFailed.Failed)
	assert.Contains(t, out.String(), "Failed")
}

func TestApplyDocument_SkipExistingFlag(t *testing.T) {
	path := writeDocument(t, `
labels:
  - name: bug
    color: d73a4a
`)
	store := newMemStore(label.Label{Name: "bug", Color: "000000"})

	applySkipExisting = true
	defer func() { applySkipExisting = false }()

	var out strings.Builder
	err := applyDocument(context.Background(), newCaptureCmd(&out), path, store)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Skipped")
}

func TestApplyDocument_DryRunLeavesStoreUntouched(t *testing.T) {
	path := writeDocument(t, `
labels:
  - name: bug
    color: d73a4a
delete:
  - wontfix
`)
	store := newMemStore(label.Label{Name: "wontfix", Color: "ffffff"})

	applyDryRun = true
	defer func() { applyDryRun = false }()

	var out strings.Builder
	err := applyDocument(context.Background(), newCaptureCmd(&out), path, store)
	require.NoError(t, err)

	assert.NotContains(t, store.labels, "bug")
	assert.Contains(t, store.labels, "wontfix")
	assert.Contains(t, out.String(), "No actual changes were made")
}

func TestApplyDocument_EmptyDocumentIsNoOp(t *testing.T) {
	path := writeDocument(t, "labels: []\n")
	store := newMemStore()

	var out strings.Builder
	err := applyDocument(context.Background(), newCaptureCmd(&out), path, store)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Nothing to do")
}

func TestApplyDocument_InvalidDocument(t *testing.T) {
	path := writeDocument(t, "labels:\n  - color: d73a4a\n")
	store := newMemStore()

	var out strings.Builder
	err := applyDocument(context.Background(), newCaptureCmd(&out), path, store)
	require.Error(t, err)
}

func TestRepoSlug_FallsBackForPlainStores(t *testing.T) {
	assert.Equal(t, "repository", repoSlug(newMemStore()))
}
