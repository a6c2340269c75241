package gitcmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/riddell/git-reap/internal/types"
)

// BranchToDelete holds the information needed to delete a specific branch.
type BranchToDelete struct {
	Name     string
	Scope    types.Scope
	Category types.Category
	Remote   string // only used for remote-scope deletions
}

// deleteArgs maps a branch onto the scope/category-specific delete command.
//
//   - local merged  -> `git branch -d`, so git's own merged check acts as a
//     second safety net behind the classifier; no -D fallback on refusal.
//   - local stale   -> `git branch -D`, the operator confirmed deleting a
//     branch that may hold unmerged work.
//   - remote        -> `git push <remote> --delete`.
func deleteArgs(branch BranchToDelete) ([]string, error) {
	if branch.Scope == types.ScopeRemote {
		if branch.Remote == "" {
			return nil, fmt.Errorf("cannot delete remote branch %q: remote name is empty", branch.Name)
		}
		return []string{"push", branch.Remote, "--delete", branch.Name}, nil
	}
	if branch.Category == types.CategoryMerged {
		return []string{"branch", "-d", branch.Name}, nil
	}
	return []string{"branch", "-D", branch.Name}, nil
}

// DeleteBranches attempts to delete each branch in turn. Every branch is an
// independent attempt: a refused or failed delete is recorded in its result
// and the outcome counters, and the batch continues.
func DeleteBranches(ctx context.Context, branches []BranchToDelete) ([]types.DeleteResult, types.DeletionOutcome) {
	results := make([]types.DeleteResult, 0, len(branches))
	var outcome types.DeletionOutcome

	for _, branch := range branches {
		result := types.DeleteResult{
			Branch:   branch.Name,
			Scope:    branch.Scope,
			Category: branch.Category,
		}

		args, err := deleteArgs(branch)
		if err != nil {
			result.Success = false
			result.Message = err.Error()
			outcome.Record(false)
			results = append(results, result)
			continue
		}
		result.Cmd = "git " + strings.Join(args, " ")

		if _, err := RunGitCommand(ctx, args...); err != nil {
			result.Success = false
			result.Message = stderrOf(err)
		} else {
			result.Success = true
			result.Message = "deleted"
		}
		outcome.Record(result.Success)
		results = append(results, result)
	}

	return results, outcome
}
