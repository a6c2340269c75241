package gitcmd

import (
	"context"
	"fmt"
	"strings"
)

// MergedTips walks the first-parent history of the given base ref and
// returns the set of commit hashes recorded as the merged side of a merge
// commit on that mainline. A branch merged via a standard two-parent merge
// commit has its tip recorded exactly as the second parent of that merge
// commit, so membership in this set is an exact match, not a reachability
// heuristic.
//
// Squash- and rebase-merged branches leave no merge commit and are
// deliberately not detected here: a fuzzy ancestry fallback would reopen
// the false-positive window this walk exists to close.
func MergedTips(ctx context.Context, baseRef string) (map[string]bool, error) {
	if baseRef == "" {
		return nil, fmt.Errorf("base ref cannot be empty")
	}

	// %H %P yields "commit parent1 parent2 ..." per line; --first-parent
	// keeps the walk on the base branch's own history.
	args := []string{"log", "--first-parent", "--format=%H %P", baseRef, "--"}
	output, err := RunGitCommand(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to walk mainline of %q: %w", baseRef, err)
	}

	merged := make(map[string]bool)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		// fields[0] is the commit itself; a merge commit lists two or
		// more parents after it.
		if len(fields) < 3 {
			continue
		}
		for _, parent := range fields[2:] {
			merged[parent] = true
		}
	}

	return merged, nil
}
