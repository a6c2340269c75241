package gitcmd

import (
	"context"
	"fmt"
)

// FetchAndPrune runs 'git fetch <remote> --prune' to refresh remote-tracking
// refs and drop any that no longer exist upstream. Callers treat a failure
// here as a warning, not a fatal error: classification simply proceeds on
// whatever refs are present.
func FetchAndPrune(ctx context.Context, remoteName string) error {
	if remoteName == "" {
		return fmt.Errorf("remote name cannot be empty for fetch --prune")
	}

	if _, err := RunGitCommand(ctx, "fetch", remoteName, "--prune"); err != nil {
		return fmt.Errorf("failed to fetch and prune remote %q: %w", remoteName, err)
	}

	return nil
}
