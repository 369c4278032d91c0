package exec

import (
	"bytes"
	"context"
	osexec "os/exec"
	"strings"

	"github.com/litmuschaos/hyperion-launcher/pkg/log"
	"github.com/pkg/errors"
)

// Runner runs a local command and returns its standard output
type Runner func(ctx context.Context, name string, args ...string) (string, error)

// EmailLookup resolves the address used when no recipients were passed
type EmailLookup func(ctx context.Context) (string, error)

// RunCommand runs the given command on the local machine
func RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	var out, errOut bytes.Buffer

	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return "", errors.Errorf("unable to run %v command, err: %v; error output: %v", name, err, strings.TrimSpace(errOut.String()))
	}
	return out.String(), nil
}

// GitEmailLookup reads the user email from the local git configuration
func GitEmailLookup(runner Runner) EmailLookup {
	return func(ctx context.Context) (string, error) {
		out, err := runner(ctx, "git", "config", "--get", "user.email")
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(out), nil
	}
}

// DefaultRecipients runs the lookup and swallows any failure, the recipients
// then default to the empty string
func DefaultRecipients(ctx context.Context, lookup EmailLookup) string {
	if lookup == nil {
		return ""
	}
	email, err := lookup(ctx)
	if err != nil {
		log.Debugf("[Recipients]: Unable to derive the default recipients, err: %v", err)
		return ""
	}
	return strings.TrimSpace(email)
}
