package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riddell/git-reap/internal/sweep"
	"github.com/riddell/git-reap/internal/types"
)

// Prompt adapts the Bubble Tea model to the pipeline's Prompter interface,
// running one interactive program per candidate batch.
type Prompt struct{}

// Select shows the candidate set and blocks until the operator confirms a
// subset, abandons the run, or interrupts the process.
func (Prompt) Select(ctx context.Context, set types.CandidateSet) ([]types.Candidate, error) {
	program := tea.NewProgram(NewModel(set), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, sweep.ErrInterrupted
		}
		return nil, fmt.Errorf("selection prompt failed: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("selection prompt returned unexpected model %T", final)
	}

	switch model.Outcome {
	case OutcomeConfirmed:
		return model.Chosen(), nil
	case OutcomeInterrupted:
		return nil, sweep.ErrInterrupted
	case OutcomeAborted, OutcomePending:
		return nil, sweep.ErrAborted
	default:
		return nil, sweep.ErrAborted
	}
}
