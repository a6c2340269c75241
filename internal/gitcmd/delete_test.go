package gitcmd

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/riddell/git-reap/internal/types"
)

func TestDeleteBranches(t *testing.T) {
	ctx := context.Background()

	branches := []BranchToDelete{
		{Name: "feat/done", Scope: types.ScopeLocal, Category: types.CategoryMerged},
		{Name: "wip/old", Scope: types.ScopeLocal, Category: types.CategoryStale},
		{Name: "feat/done", Scope: types.ScopeRemote, Category: types.CategoryMerged, Remote: "origin"},
		{Name: "feat/refused", Scope: types.ScopeLocal, Category: types.CategoryMerged},
		{Name: "feat/rejected", Scope: types.ScopeRemote, Category: types.CategoryStale, Remote: "origin"},
	}

	teardown := setupMockRunner(t, func(_ context.Context, args ...string) (string, error) {
		cmd := strings.Join(args, " ")
		switch cmd {
		case "branch -d feat/done":
			return "Deleted branch feat/done (was abc123).", nil
		case "branch -D wip/old":
			return "Deleted branch wip/old (was def456).", nil
		case "push origin --delete feat/done":
			return "", nil
		case "branch -d feat/refused":
			return "", fmt.Errorf("git command failed: exit status 1\nargs: %v\nstderr: %s",
				args, "error: the branch 'feat/refused' is not fully merged")
		case "push origin --delete feat/rejected":
			return "", fmt.Errorf("git command failed: exit status 1\nargs: %v\nstderr: %s",
				args, "remote rejected: protected branch")
		}
		return "", fmt.Errorf("unexpected command in mock: %v", args)
	})
	defer teardown()

	results, outcome := DeleteBranches(ctx, branches)

	expectedOutcome := types.DeletionOutcome{Attempted: 5, Deleted: 3, Failed: 2}
	if outcome != expectedOutcome {
		t.Errorf("outcome mismatch. Got %+v, want %+v", outcome, expectedOutcome)
	}

	expected := []types.DeleteResult{
		{
			Branch: "feat/done", Scope: types.ScopeLocal, Category: types.CategoryMerged,
			Success: true, Message: "deleted", Cmd: "git branch -d feat/done",
		},
		{
			Branch: "wip/old", Scope: types.ScopeLocal, Category: types.CategoryStale,
			Success: true, Message: "deleted", Cmd: "git branch -D wip/old",
		},
		{
			Branch: "feat/done", Scope: types.ScopeRemote, Category: types.CategoryMerged,
			Success: true, Message: "deleted", Cmd: "git push origin --delete feat/done",
		},
		{
			Branch: "feat/refused", Scope: types.ScopeLocal, Category: types.CategoryMerged,
			Success: false, Message: "error: the branch 'feat/refused' is not fully merged",
			Cmd: "git branch -d feat/refused",
		},
		{
			Branch: "feat/rejected", Scope: types.ScopeRemote, Category: types.CategoryStale,
			Success: false, Message: "remote rejected: protected branch",
			Cmd: "git push origin --delete feat/rejected",
		},
	}
	if !reflect.DeepEqual(results, expected) {
		t.Errorf("results mismatch.\nGot:  %+v\nWant: %+v", results, expected)
	}
}

func TestDeleteBranchesNeverForcesMergedDeletes(t *testing.T) {
	ctx := context.Background()

	// A refused -d must stay refused: -D here would bypass git's own
	// merged check, which is the second safety net behind classification.
	teardown := setupMockRunner(t, func(_ context.Context, args ...string) (string, error) {
		cmd := strings.Join(args, " ")
		if strings.HasPrefix(cmd, "branch -D") {
			t.Errorf("force delete attempted for a merged candidate: %v", args)
		}
		return "", errors.New("not fully merged")
	})
	defer teardown()

	results, outcome := DeleteBranches(ctx, []BranchToDelete{
		{Name: "feat/x", Scope: types.ScopeLocal, Category: types.CategoryMerged},
	})
	if outcome.Failed != 1 || results[0].Success {
		t.Errorf("expected a single recorded failure, got %+v / %+v", outcome, results)
	}
}

func TestDeleteBranchesEmptyRemoteName(t *testing.T) {
	ctx := context.Background()

	teardown := setupMockRunner(t, func(_ context.Context, args ...string) (string, error) {
		t.Errorf("runner should not be called for invalid input, got: %v", args)
		return "", errors.New("runner called unexpectedly")
	})
	defer teardown()

	results, outcome := DeleteBranches(ctx, []BranchToDelete{
		{Name: "bad-remote", Scope: types.ScopeRemote, Category: types.CategoryMerged},
	})

	if outcome.Attempted != 1 || outcome.Failed != 1 {
		t.Errorf("expected one failed attempt, got %+v", outcome)
	}
	if results[0].Success || results[0].Cmd != "" {
		t.Errorf("expected validation failure before any command, got %+v", results[0])
	}
}

func TestDeleteBranchesEmptyInput(t *testing.T) {
	ctx := context.Background()

	teardown := setupMockRunner(t, func(_ context.Context, args ...string) (string, error) {
		t.Errorf("runner should not be called with empty input, got: %v", args)
		return "", errors.New("runner called unexpectedly")
	})
	defer teardown()

	results, outcome := DeleteBranches(ctx, nil)
	if len(results) != 0 || outcome != (types.DeletionOutcome{}) {
		t.Errorf("expected zero results and zero outcome, got %+v / %+v", results, outcome)
	}
}
