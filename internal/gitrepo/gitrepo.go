// Package gitrepo discovers the GitHub repository a command should
// operate on, from the git origin remote of the current directory.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"labelctl/pkg/logging"
)

// Repository identifies a GitHub repository by owner and name.
type Repository struct {
	Owner string
	Name  string
}

// Slug returns the owner/name form used in messages and API paths.
func (r Repository) Slug() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// Discover resolves the GitHub repository from the origin remote of the
// git repository enclosing the working directory. It fails before any
// remote label call can happen, so a bad working directory aborts the
// whole command.
func Discover(ctx context.Context) (Repository, error) {
	if _, err := gitOutput(ctx, "rev-parse", "--show-toplevel"); err != nil {
		return Repository{}, fmt.Errorf("not a git repository: run this command from within a git repository")
	}

	url, err := gitOutput(ctx, "config", "--get", "remote.origin.url")
	if err != nil {
		return Repository{}, fmt.Errorf("could not find remote.origin.url: make sure the repository has an origin remote pointing to GitHub")
	}

	repo, err := ParseURL(url)
	if err != nil {
		return Repository{}, err
	}

	logging.Debug("GitRepo", "discovered %s from origin %s", repo.Slug(), url)
	return repo, nil
}

func gitOutput(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("git command not found: please install git")
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ParseURL extracts owner and repository name from a GitHub remote URL.
// Both HTTPS (https://github.com/owner/repo[.git]) and SSH
// (git@github.com:owner/repo[.git]) forms are supported.
func ParseURL(url string) (Repository, error) {
	if path, ok := strings.CutPrefix(url, "https://github.com/"); ok {
		return splitOwnerRepo(path)
	}
	if path, ok := strings.CutPrefix(url, "git@github.com:"); ok {
		return splitOwnerRepo(path)
	}
	return Repository{}, fmt.Errorf("unsupported remote URL %q: only GitHub HTTPS and SSH URLs are supported", url)
}

func splitOwnerRepo(path string) (Repository, error) {
	path = strings.TrimSuffix(path, ".git")

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, fmt.Errorf("could not parse owner and repository from remote URL")
	}
	return Repository{Owner: parts[0], Name: parts[1]}, nil
}
