package cmd

import (
	"context"
	"fmt"
	"strings"

	"labelctl/internal/github"
	"labelctl/internal/gitrepo"
	"labelctl/pkg/logging"
)

// resolveClient builds the label store for the target repository: the
// --repo flag wins, otherwise the origin remote of the current git
// repository is used.
func resolveClient(ctx context.Context) (*github.Client, error) {
	if rootRepo != "" {
		owner, name, err := splitRepoFlag(rootRepo)
		if err != nil {
			return nil, err
		}
		return github.NewClient(owner, name), nil
	}

	repo, err := gitrepo.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot determine target repository (run inside a git repository with a GitHub origin, or pass --repo): %w", err)
	}
	logging.Debug("CLI", "Using repository %s from git origin", repo.Slug())
	return github.NewClient(repo.Owner, repo.Name), nil
}

func splitRepoFlag(value string) (string, string, error) {
	owner, name, ok := strings.Cut(value, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid --repo value %q: expected owner/name", value)
	}
	return owner, name, nil
}
