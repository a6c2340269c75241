package gitcmd

import (
	"context"

	"github.com/riddell/git-reap/internal/types"
)

// Ops adapts this package's functions to the interface the sweep pipeline
// consumes. It carries no state; all commands go through the package Runner.
type Ops struct{}

func (Ops) ListBranches(ctx context.Context, scope types.Scope, remote string) ([]types.Branch, error) {
	return ListBranches(ctx, scope, remote)
}

func (Ops) MergedTips(ctx context.Context, baseRef string) (map[string]bool, error) {
	return MergedTips(ctx, baseRef)
}

func (Ops) RefExists(ctx context.Context, ref string) bool {
	return RefExists(ctx, ref)
}

func (Ops) CurrentBranch(ctx context.Context) string {
	return CurrentBranch(ctx)
}

func (Ops) DeleteBranches(ctx context.Context, branches []BranchToDelete) ([]types.DeleteResult, types.DeletionOutcome) {
	return DeleteBranches(ctx, branches)
}

func (Ops) FetchAndPrune(ctx context.Context, remote string) error {
	return FetchAndPrune(ctx, remote)
}
