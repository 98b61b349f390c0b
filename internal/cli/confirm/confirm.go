// Package confirm provides confirmation prompts for destructive operations.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mpyw/smkit/internal/cli/colors"
)

// Prompter handles confirmation prompts.
// When both AccountID and Region are set, prompts show the target account.
type Prompter struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	AccountID string
	Region    string
	Profile   string
}

// Confirm displays a confirmation prompt and returns true if the user confirms.
// If skipConfirm is true, returns true without prompting.
func (p *Prompter) Confirm(message string, skipConfirm bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	p.printTarget()
	_, _ = fmt.Fprintf(p.Stderr, "%s %s [y/N]: ", colors.Warning("?"), message)

	return p.readYes()
}

// ConfirmAction is a convenience function for confirming an action.
func (p *Prompter) ConfirmAction(action, target string, skipConfirm bool) (bool, error) {
	return p.Confirm(fmt.Sprintf("%s %s?", action, target), skipConfirm)
}

// ConfirmDelete confirms deletion of one or more secrets with a warning.
// permanent selects the wording for deletion without a recovery window.
func (p *Prompter) ConfirmDelete(targets []string, permanent, skipConfirm bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	p.printTarget()

	verb := "schedule deletion of"
	if permanent {
		verb = "permanently delete"
	}

	_, _ = fmt.Fprintf(p.Stderr, "%s This will %s: %s\n", colors.Error("!"), verb, strings.Join(targets, ", "))
	_, _ = fmt.Fprintf(p.Stderr, "%s Continue? [y/N]: ", colors.Warning("?"))

	return p.readYes()
}

func (p *Prompter) printTarget() {
	if p.AccountID == "" || p.Region == "" {
		return
	}

	target := p.AccountID + " / " + p.Region
	if p.Profile != "" {
		target += " (" + p.Profile + ")"
	}

	_, _ = fmt.Fprintf(p.Stderr, "%s Target: %s\n", colors.Info("i"), target)
}

func (p *Prompter) readYes() (bool, error) {
	response, err := bufio.NewReader(p.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes", nil
}
