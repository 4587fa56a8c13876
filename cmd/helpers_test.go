package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRepoFlag(t *testing.T) {
	owner, name, err := splitRepoFlag("octocat/hello-world")
	require.NoError(t, err)
	assert.Equal(t, "octocat", owner)
	assert.Equal(t, "hello-world", name)
}

func TestSplitRepoFlag_Invalid(t *testing.T) {
	for _, value := range []string{"", "octocat", "octocat/", "/repo", "a/b/c"} {
		_, _, err := splitRepoFlag(value)
		assert.Error(t, err, "value %q", value)
	}
}
