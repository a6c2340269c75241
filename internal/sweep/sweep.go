// Package sweep sequences the cleanup pipeline: prune, classify the local
// scope, confirm and delete, then the same for the remote scope, a final
// prune, and a summary. Each classification step is independently fault
// tolerant; only operator cancellation or a broken command layer stops the
// run early.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/riddell/git-reap/internal/classify"
	"github.com/riddell/git-reap/internal/gitcmd"
	"github.com/riddell/git-reap/internal/types"
)

// ErrAborted signals the operator abandoned the run from a prompt. No
// further mutations happen after it; the process exits cleanly.
var ErrAborted = errors.New("aborted by operator")

// ErrInterrupted signals an interrupt (Ctrl+C) during a prompt. Like
// ErrAborted it stops the pipeline immediately, but the process exits with
// a signal-appropriate status.
var ErrInterrupted = errors.New("interrupted")

// GitOps is the narrow version-control surface the pipeline consumes. The
// production implementation is a thin adapter over the gitcmd package; tests
// substitute fakes with scripted histories.
type GitOps interface {
	ListBranches(ctx context.Context, scope types.Scope, remote string) ([]types.Branch, error)
	MergedTips(ctx context.Context, baseRef string) (map[string]bool, error)
	RefExists(ctx context.Context, ref string) bool
	CurrentBranch(ctx context.Context) string
	DeleteBranches(ctx context.Context, branches []gitcmd.BranchToDelete) ([]types.DeleteResult, types.DeletionOutcome)
	FetchAndPrune(ctx context.Context, remote string) error
}

// Prompter returns the operator-confirmed subset of a candidate set.
type Prompter interface {
	Select(ctx context.Context, set types.CandidateSet) ([]types.Candidate, error)
}

// Options configures one run.
type Options struct {
	BaseBranch string
	RemoteName string
	Remote     bool // classify and delete in the remote scope too
	StaleDays  int  // <= 0 disables staleness classification
	DryRun     bool
	Protected  []string
}

// Report is the accumulated result of a run, threaded through the pipeline
// stages and returned rather than collected in globals.
type Report struct {
	Sets    []types.CandidateSet
	Results []types.DeleteResult
	Outcome types.DeletionOutcome

	remoteAttempted bool
}

// TotalCandidates counts candidates across all classified scopes.
func (r Report) TotalCandidates() int {
	total := 0
	for _, set := range r.Sets {
		total += set.Total()
	}
	return total
}

// Sweeper drives the pipeline.
type Sweeper struct {
	git    GitOps
	prompt Prompter
	opts   Options
	log    *zap.Logger
	out    io.Writer
	now    time.Time
}

// New builds a Sweeper. The time snapshot for staleness comparisons is taken
// here, once, so every branch in the run is measured against the same clock.
func New(git GitOps, prompt Prompter, opts Options, log *zap.Logger, out io.Writer) *Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sweeper{
		git:    git,
		prompt: prompt,
		opts:   opts,
		log:    log,
		out:    out,
		now:    time.Now(),
	}
}

// Run executes the full pipeline and prints the summary. The returned Report
// is complete even when the run was cut short by cancellation.
func (s *Sweeper) Run(ctx context.Context) (Report, error) {
	var report Report

	if s.opts.Remote {
		if err := s.git.FetchAndPrune(ctx, s.opts.RemoteName); err != nil {
			s.log.Warn("initial prune failed", zap.String("remote", s.opts.RemoteName), zap.Error(err))
		}
	}

	protected := make(map[string]bool, len(s.opts.Protected))
	for _, name := range s.opts.Protected {
		protected[name] = true
	}

	scopes := []types.Scope{types.ScopeLocal}
	if s.opts.Remote {
		scopes = append(scopes, types.ScopeRemote)
	}

	for _, scope := range scopes {
		set := s.classifyScope(ctx, scope, protected)
		report.Sets = append(report.Sets, set)

		if err := s.settleScope(ctx, set, &report); err != nil {
			s.printSummary(&report, true)
			return report, err
		}
	}

	if report.remoteAttempted {
		if err := s.git.FetchAndPrune(ctx, s.opts.RemoteName); err != nil {
			s.log.Warn("final prune failed", zap.String("remote", s.opts.RemoteName), zap.Error(err))
		}
	}

	s.printSummary(&report, false)
	return report, nil
}

// baseRef returns the fully qualified ref of the base branch in a scope.
func (s *Sweeper) baseRef(scope types.Scope) string {
	if scope == types.ScopeRemote {
		return "refs/remotes/" + s.opts.RemoteName + "/" + s.opts.BaseBranch
	}
	return "refs/heads/" + s.opts.BaseBranch
}

// classifyScope gathers the inventory and mainline for one scope and derives
// its candidate set. Every failure degrades to "no candidates" for the
// affected category, logged as a warning; the run continues.
func (s *Sweeper) classifyScope(ctx context.Context, scope types.Scope, protected map[string]bool) types.CandidateSet {
	branches, err := s.git.ListBranches(ctx, scope, s.opts.RemoteName)
	if err != nil {
		s.log.Warn("branch listing failed, scope yields no candidates",
			zap.String("scope", string(scope)), zap.Error(err))
		return types.CandidateSet{Scope: scope}
	}

	var mergedTips map[string]bool
	baseRef := s.baseRef(scope)
	if !s.git.RefExists(ctx, baseRef) {
		s.log.Warn("base branch not found, merged classification skipped",
			zap.String("scope", string(scope)),
			zap.String("base", s.opts.BaseBranch))
	} else if mergedTips, err = s.git.MergedTips(ctx, baseRef); err != nil {
		s.log.Warn("mainline walk failed, merged classification skipped",
			zap.String("scope", string(scope)), zap.Error(err))
		mergedTips = nil
	}

	current := ""
	if scope == types.ScopeLocal {
		current = s.git.CurrentBranch(ctx)
		if current == "" {
			s.log.Warn("could not determine current branch, scope=local")
		}
	}

	return classify.Build(branches, mergedTips, classify.Params{
		Scope:         scope,
		BaseBranch:    s.opts.BaseBranch,
		CurrentBranch: current,
		Protected:     protected,
		StaleDays:     s.opts.StaleDays,
		Now:           s.now,
		Logger:        s.log,
	})
}

// settleScope runs the select-and-delete stage for one scope's candidates.
// In dry-run mode it only lists them; nothing is ever attempted.
func (s *Sweeper) settleScope(ctx context.Context, set types.CandidateSet, report *Report) error {
	if set.IsEmpty() {
		fmt.Fprintf(s.out, "%s: no candidate branches.\n", set.Scope)
		return nil
	}

	if s.opts.DryRun {
		s.printDryRun(set)
		return nil
	}

	chosen, err := s.prompt.Select(ctx, set)
	if err != nil {
		return err
	}
	if len(chosen) == 0 {
		fmt.Fprintf(s.out, "%s: nothing selected.\n", set.Scope)
		return nil
	}

	toDelete := make([]gitcmd.BranchToDelete, 0, len(chosen))
	for _, candidate := range chosen {
		remote := ""
		if candidate.Scope == types.ScopeRemote {
			remote = s.opts.RemoteName
			report.remoteAttempted = true
		}
		toDelete = append(toDelete, gitcmd.BranchToDelete{
			Name:     candidate.Name,
			Scope:    candidate.Scope,
			Category: candidate.Category,
			Remote:   remote,
		})
	}

	results, outcome := s.git.DeleteBranches(ctx, toDelete)
	report.Results = append(report.Results, results...)
	report.Outcome.Merge(outcome)
	return nil
}
