package gitrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Repository
	}{
		{
			name:     "https with .git suffix",
			url:      "https://github.com/cli/cli.git",
			expected: Repository{Owner: "cli", Name: "cli"},
		},
		{
			name:     "https without suffix",
			url:      "https://github.com/cli/cli",
			expected: Repository{Owner: "cli", Name: "cli"},
		},
		{
			name:     "ssh with .git suffix",
			url:      "git@github.com:cli/cli.git",
			expected: Repository{Owner: "cli", Name: "cli"},
		},
		{
			name:     "ssh without suffix",
			url:      "git@github.com:cli/cli",
			expected: Repository{Owner: "cli", Name: "cli"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := ParseURL(tc.url)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, repo)
		})
	}
}

func TestParseURL_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "gitlab remote", url: "https://gitlab.com/owner/repo.git"},
		{name: "bare host", url: "github.com/owner/repo"},
		{name: "missing repo segment", url: "https://github.com/owner"},
		{name: "empty", url: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseURL(tc.url)
			assert.Error(t, err)
		})
	}
}

func TestRepositorySlug(t *testing.T) {
	repo := Repository{Owner: "octocat", Name: "hello-world"}
	assert.Equal(t, "octocat/hello-world", repo.Slug())
}
