package gh

import (
	"fmt"
	"os/exec"
	"strings"
)

// Run executes the gh CLI with the given arguments and returns stdout.
// stderr is folded into the error so callers can surface it verbatim.
func Run(args ...string) (string, error) {
	cmd := exec.Command("gh", args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("gh %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}
