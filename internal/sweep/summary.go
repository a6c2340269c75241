package sweep

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/riddell/git-reap/internal/types"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func categoryLabel(category types.Category) string {
	if category == types.CategoryMerged {
		return successStyle.Render("(merged)")
	}
	return warningStyle.Render("(stale)")
}

// printDryRun lists one scope's candidates without touching anything.
func (s *Sweeper) printDryRun(set types.CandidateSet) {
	fmt.Fprintln(s.out, warningStyle.Render("[dry run]")+" "+
		headingStyle.Render(fmt.Sprintf("%s candidates:", set.Scope)))
	for _, candidate := range set.Candidates() {
		fmt.Fprintf(s.out, "  - %s %s\n", candidate.Name, categoryLabel(candidate.Category))
	}
	fmt.Fprintln(s.out)
}

// printSummary reports per-branch results and the final counts. The counts
// are always printed, even after an aborted run, so a partial batch is never
// silently swallowed.
func (s *Sweeper) printSummary(report *Report, aborted bool) {
	if aborted {
		fmt.Fprintln(s.out, warningStyle.Render("Run aborted; remaining scopes skipped."))
	}

	if len(report.Results) > 0 {
		fmt.Fprintln(s.out, headingStyle.Render("Results:"))
		for _, res := range report.Results {
			line := fmt.Sprintf("%s %s %s", res.Scope, res.Branch, categoryLabel(res.Category))
			if res.Success {
				fmt.Fprintln(s.out, "  "+successStyle.Render("deleted")+" "+line)
			} else {
				fmt.Fprintln(s.out, "  "+errorStyle.Render("failed ")+" "+line+
					faintStyle.Render(" - "+res.Message))
			}
		}
	}

	if s.opts.DryRun {
		fmt.Fprintf(s.out, "%d candidate(s) found; no branches were deleted (dry run).\n",
			report.TotalCandidates())
		return
	}

	fmt.Fprintf(s.out, "Attempted %d, deleted %d, failed %d.\n",
		report.Outcome.Attempted, report.Outcome.Deleted, report.Outcome.Failed)
}
