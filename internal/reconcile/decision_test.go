package reconcile

import (
	"testing"

	"labelctl/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestBranchFor(t *testing.T) {
	tests := []struct {
		name     string
		decl     config.Declaration
		expected branch
	}{
		{
			name:     "rename candidates win even with a color",
			decl:     config.Declaration{Name: "bug", Color: "d73a49", UpdateIfMatch: []string{"Bug"}},
			expected: branchRenameSearch,
		},
		{
			name:     "rename candidates without color",
			decl:     config.Declaration{Name: "bug", UpdateIfMatch: []string{"Bug"}},
			expected: branchRenameSearch,
		},
		{
			name:     "color without candidates creates",
			decl:     config.Declaration{Name: "bug", Color: "d73a49"},
			expected: branchCreateOrResolve,
		},
		{
			name:     "neither color nor candidates updates in place",
			decl:     config.Declaration{Name: "bug"},
			expected: branchUpdateOnly,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, branchFor(tc.decl))
		})
	}
}
