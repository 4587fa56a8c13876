// Package github implements the remote label store on top of the
// authenticated `gh` CLI. All remote traffic goes through `gh api`;
// authentication, tokens and transport are gh's problem.
//
// The package classifies gh failures into the typed store errors from
// internal/label, so callers branch with errors.Is instead of matching
// error text.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"labelctl/internal/label"
	"labelctl/pkg/logging"
)

// Runner executes the gh binary with the given arguments and returns its
// stdout and stderr. It exists so tests can intercept remote traffic.
type Runner func(ctx context.Context, args ...string) (stdout, stderr []byte, err error)

// Client talks to the GitHub labels API of a single repository.
type Client struct {
	owner  string
	repo   string
	runner Runner
}

var _ label.Store = (*Client)(nil)

// NewClient returns a client for owner/repo using the default gh runner.
func NewClient(owner, repo string) *Client {
	return NewClientWithRunner(owner, repo, execGH)
}

// NewClientWithRunner returns a client with an explicit runner.
func NewClientWithRunner(owner, repo string, runner Runner) *Client {
	return &Client{owner: owner, repo: repo, runner: runner}
}

// Repo returns the owner/repo slug the client operates on.
func (c *Client) Repo() string {
	return fmt.Sprintf("%s/%s", c.owner, c.repo)
}

func (c *Client) labelsPath() string {
	return fmt.Sprintf("repos/%s/%s/labels", c.owner, c.repo)
}

func (c *Client) labelPath(name string) string {
	return fmt.Sprintf("%s/%s", c.labelsPath(), url.PathEscape(name))
}

// run invokes `gh api` and classifies failures into typed store errors.
func (c *Client) run(ctx context.Context, subject string, args ...string) ([]byte, error) {
	argv := append([]string{"api"}, args...)
	logging.Debug("GitHub", "gh %v", argv)

	stdout, stderr, err := c.runner(ctx, argv...)
	if err != nil {
		return nil, classify(subject, stdout, stderr, err)
	}
	return stdout, nil
}

// List returns every label in the repository.
func (c *Client) List(ctx context.Context) ([]label.Label, error) {
	// --paginate keeps repositories with more than 30 labels complete.
	out, err := c.run(ctx, "", c.labelsPath(), "--paginate")
	if err != nil {
		return nil, err
	}

	var labels []label.Label
	if err := json.Unmarshal(out, &labels); err != nil {
		return nil, fmt.Errorf("parsing label list: %w", err)
	}
	return labels, nil
}

// Get fetches a single label by name.
func (c *Client) Get(ctx context.Context, name string) (*label.Label, error) {
	out, err := c.run(ctx, name, c.labelPath(name))
	if err != nil {
		return nil, err
	}
	return parseLabel(out)
}

// Create adds a new label. The color must already be in canonical form.
func (c *Client) Create(ctx context.Context, req label.CreateRequest) (*label.Label, error) {
	args := []string{
		c.labelsPath(),
		"-f", "name=" + req.Name,
		"-f", "color=" + req.Color,
	}
	if req.Description != nil {
		args = append(args, "-f", "description="+*req.Description)
	}

	out, err := c.run(ctx, req.Name, args...)
	if err != nil {
		return nil, err
	}
	return parseLabel(out)
}

// Update patches the named label. Zero-value request fields are omitted
// from the call, so the remote keeps their current values.
func (c *Client) Update(ctx context.Context, name string, req label.UpdateRequest) (*label.Label, error) {
	args := []string{c.labelPath(name), "-X", "PATCH"}
	if req.NewName != "" {
		args = append(args, "-f", "name="+req.NewName)
	}
	if req.Color != "" {
		args = append(args, "-f", "color="+req.Color)
	}
	if req.Description != nil {
		args = append(args, "-f", "description="+*req.Description)
	}

	out, err := c.run(ctx, name, args...)
	if err != nil {
		return nil, err
	}
	return parseLabel(out)
}

// Delete removes the named label.
func (c *Client) Delete(ctx context.Context, name string) error {
	_, err := c.run(ctx, name, c.labelPath(name), "-X", "DELETE")
	return err
}

func parseLabel(data []byte) (*label.Label, error) {
	var l label.Label
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing label: %w", err)
	}
	return &l, nil
}
