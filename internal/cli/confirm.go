package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Confirm asks the user a yes/no question on the terminal and returns
// true only on an explicit yes. EOF and Ctrl-C count as no.
func Confirm(prompt string) (bool, error) {
	rl, err := readline.New(fmt.Sprintf("%s [y/N] ", prompt))
	if err != nil {
		return false, err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ConfirmDeletion asks before an irreversible label deletion.
func ConfirmDeletion(name string) (bool, error) {
	return Confirm(fmt.Sprintf("Permanently delete label %s?", text.FgCyan.Sprintf("'%s'", name)))
}
