package gitcmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riddell/git-reap/internal/types"
)

const (
	// Format: refname:short<NULL>objectname<NULL>committerdate:unix<NEWLINE>
	// NUL separates fields so branch names containing unusual characters
	// cannot break parsing.
	branchRefFormat = "%(refname:short)%00%(objectname)%00%(committerdate:unix)"
	fieldSeparator  = "\x00"
)

// ListBranches returns every branch in the given scope with its tip hash and
// last commit time. Remote branch names are normalized by stripping the
// remote prefix, and the symbolic HEAD pointer is filtered out. A zero
// LastCommit means the committer date could not be parsed.
func ListBranches(ctx context.Context, scope types.Scope, remote string) ([]types.Branch, error) {
	pattern := "refs/heads/"
	if scope == types.ScopeRemote {
		if remote == "" {
			return nil, fmt.Errorf("remote name cannot be empty for remote branch listing")
		}
		pattern = "refs/remotes/" + remote + "/"
	}

	args := []string{"for-each-ref", pattern, "--format=" + branchRefFormat}
	output, err := RunGitCommand(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s branches: %w", scope, err)
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return []types.Branch{}, nil
	}

	var branches []types.Branch
	for _, record := range strings.Split(output, "\n") {
		if record == "" {
			continue
		}
		fields := strings.Split(record, fieldSeparator)
		if len(fields) != 3 {
			continue
		}

		name := fields[0]
		if scope == types.ScopeRemote {
			name = strings.TrimPrefix(name, remote+"/")
			// origin/HEAD is a symbolic pointer, not a branch.
			if name == "HEAD" {
				continue
			}
		}

		var lastCommit time.Time
		if unix, parseErr := strconv.ParseInt(fields[2], 10, 64); parseErr == nil && unix > 0 {
			lastCommit = time.Unix(unix, 0)
		}

		branches = append(branches, types.Branch{
			Name:       name,
			Scope:      scope,
			Tip:        fields[1],
			LastCommit: lastCommit,
		})
	}

	return branches, nil
}

// RefExists reports whether the given fully qualified ref resolves to a
// commit. Used to check base branch presence per scope before classifying.
func RefExists(ctx context.Context, ref string) bool {
	out := RunGitCommandQuiet(ctx, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
	return out != ""
}

// CurrentBranch returns the name of the checked-out branch, or empty when
// HEAD is detached.
func CurrentBranch(ctx context.Context) string {
	return RunGitCommandQuiet(ctx, "branch", "--show-current")
}

// IsInGitRepo checks if the current directory is within a Git working tree.
func IsInGitRepo(ctx context.Context) bool {
	return RunGitCommandQuiet(ctx, "rev-parse", "--is-inside-work-tree") == "true"
}
