// Package classify turns a scope's branch inventory into a deduplicated
// set of deletion candidates. All functions here are pure over in-memory
// inputs: gathering the inventory and executing deletions live elsewhere.
package classify

import (
	"time"

	"go.uber.org/zap"

	"github.com/riddell/git-reap/internal/types"
)

// Params carries one scope's classification inputs. Now is captured once per
// run so staleness results are deterministic within a single invocation.
type Params struct {
	Scope         types.Scope
	BaseBranch    string
	CurrentBranch string // local scope only; never a candidate
	Protected     map[string]bool
	StaleDays     int // <= 0 disables staleness classification
	Now           time.Time
	Logger        *zap.Logger
}

func (p Params) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// excluded reports whether a branch may never be a candidate in this scope:
// the base branch, the checked-out branch (local scope), and anything the
// operator listed as protected.
func (p Params) excluded(name string) bool {
	if name == p.BaseBranch {
		return true
	}
	if p.Scope == types.ScopeLocal && p.CurrentBranch != "" && name == p.CurrentBranch {
		return true
	}
	return p.Protected[name]
}

// Build classifies every branch in the scope and returns the candidate set.
// mergedTips is the set of commit hashes recorded as the merged side of
// merge commits on the base mainline; nil means the base branch was absent
// and merged classification is skipped for this scope.
func Build(branches []types.Branch, mergedTips map[string]bool, p Params) types.CandidateSet {
	set := types.CandidateSet{Scope: p.Scope}

	mergedNames := make(map[string]bool, len(branches))
	for _, branch := range branches {
		if p.excluded(branch.Name) {
			continue
		}
		if mergedTips[branch.Tip] {
			set.Merged = append(set.Merged, branch)
			mergedNames[branch.Name] = true
		}
	}

	set.Stale = stale(branches, mergedNames, p)
	return set
}

// stale selects branches whose last commit is strictly older than the
// threshold. Branches already classified as merged are skipped: merged
// takes precedence, so no branch is ever prompted for twice.
func stale(branches []types.Branch, mergedNames map[string]bool, p Params) []types.Branch {
	if p.StaleDays <= 0 {
		return nil
	}

	cutoff := p.Now.Add(-time.Duration(p.StaleDays) * 24 * time.Hour)
	log := p.logger()

	var out []types.Branch
	for _, branch := range branches {
		if p.excluded(branch.Name) || mergedNames[branch.Name] {
			continue
		}
		if branch.LastCommit.IsZero() {
			// Cannot prove staleness without a timestamp.
			log.Warn("skipping branch with unknown commit timestamp",
				zap.String("scope", string(p.Scope)),
				zap.String("branch", branch.Name))
			continue
		}
		if branch.LastCommit.Before(cutoff) {
			out = append(out, branch)
		}
	}
	return out
}
