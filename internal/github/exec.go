package github

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// ghBinary is the executable all remote calls go through.
const ghBinary = "gh"

// execGH is the default Runner. It shells out to gh and captures both
// output streams.
func execGH(ctx context.Context, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, ghBinary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && errors.Is(err, exec.ErrNotFound) {
		return nil, nil, &NotInstalledError{}
	}
	return stdout.Bytes(), stderr.Bytes(), err
}

// RunAuth passes an auth subcommand (login, logout, status) straight
// through to gh with the terminal attached, so gh can drive its own
// interactive flow.
func RunAuth(ctx context.Context, subcommand string) error {
	cmd := exec.CommandContext(ctx, ghBinary, "auth", subcommand)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return &NotInstalledError{}
	}
	return &CommandError{Stderr: "auth " + subcommand + " failed", Err: err}
}
