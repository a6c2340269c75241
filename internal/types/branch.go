// Package types defines the shared data model for branch classification
// and deletion.
package types

import "time"

// Scope identifies which branch namespace a branch lives in. Local and
// remote branches with the same name are distinct entities.
type Scope string

const (
	ScopeLocal  Scope = "local"
	ScopeRemote Scope = "remote"
)

// Category classifies why a branch is a deletion candidate.
type Category string

const (
	// CategoryMerged marks branches whose tip was merged into the base
	// branch via a merge commit on the base mainline.
	CategoryMerged Category = "merged"
	// CategoryStale marks branches whose last commit predates the
	// configured age threshold.
	CategoryStale Category = "stale"
)

// Branch holds raw Git data for a single branch in one scope.
// Remote branch names are stored without the remote prefix.
type Branch struct {
	Name       string
	Scope      Scope
	Tip        string    // commit hash the branch points to
	LastCommit time.Time // zero value means the timestamp is unknown
}

// Candidate is a branch that classification proposes for deletion.
type Candidate struct {
	Branch
	Category Category
}

// CandidateSet is the per-scope result of classification. A branch never
// appears in both subsets: merged takes precedence over stale.
type CandidateSet struct {
	Scope  Scope
	Merged []Branch
	Stale  []Branch
}

// Total returns the number of candidates across both categories.
func (s CandidateSet) Total() int {
	return len(s.Merged) + len(s.Stale)
}

// IsEmpty reports whether classification produced no candidates.
func (s CandidateSet) IsEmpty() bool {
	return s.Total() == 0
}

// Candidates flattens the set into a single ordered slice, merged first.
func (s CandidateSet) Candidates() []Candidate {
	out := make([]Candidate, 0, s.Total())
	for _, b := range s.Merged {
		out = append(out, Candidate{Branch: b, Category: CategoryMerged})
	}
	for _, b := range s.Stale {
		out = append(out, Candidate{Branch: b, Category: CategoryStale})
	}
	return out
}

// DeleteResult holds the outcome of one delete attempt.
type DeleteResult struct {
	Branch   string
	Scope    Scope
	Category Category
	Success  bool
	Message  string // success message or error details
	Cmd      string // the command attempted
}

// DeletionOutcome accumulates per-batch deletion accounting. Failures are
// counted, never propagated as errors, so one refused delete cannot abort
// the rest of a batch.
type DeletionOutcome struct {
	Attempted int
	Deleted   int
	Failed    int
}

// Record folds a single delete attempt into the outcome.
func (o *DeletionOutcome) Record(success bool) {
	o.Attempted++
	if success {
		o.Deleted++
	} else {
		o.Failed++
	}
}

// Merge folds another outcome into this one.
func (o *DeletionOutcome) Merge(other DeletionOutcome) {
	o.Attempted += other.Attempted
	o.Deleted += other.Deleted
	o.Failed += other.Failed
}
