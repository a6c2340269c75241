// Package tui implements the interactive selection prompt using Bubble Tea.
// It only gathers the operator's choice: deletions are executed by the
// pipeline after the prompt returns.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riddell/git-reap/internal/types"
)

var (
	docStyle           = lipgloss.NewStyle().Margin(1, 2)
	headingStyle       = lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1)
	cursorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	successStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	warningStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	confirmPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	forceDeleteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpTextStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ViewState represents the different views the prompt can be in.
type ViewState int

const (
	// StateSelecting is the multi-select list view.
	StateSelecting ViewState = iota
	// StateConfirming asks for a final yes/no on the chosen subset.
	StateConfirming
)

// Outcome records how the prompt ended.
type Outcome int

const (
	// OutcomePending means the prompt is still running.
	OutcomePending Outcome = iota
	// OutcomeConfirmed means the operator confirmed the selection.
	OutcomeConfirmed
	// OutcomeAborted means the operator abandoned the run (q / esc).
	OutcomeAborted
	// OutcomeInterrupted means Ctrl+C was pressed; the caller maps this
	// to a signal-style exit.
	OutcomeInterrupted
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "abort run")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.All, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the Bubble Tea model for one scope's selection prompt.
type Model struct {
	Scope     types.Scope
	Items     []types.Candidate
	Cursor    int
	Selected  map[int]bool
	ViewState ViewState
	Outcome   Outcome

	keys keyMap
	help help.Model
}

// NewModel builds the prompt model for one candidate set, merged candidates
// listed before stale ones.
func NewModel(set types.CandidateSet) Model {
	return Model{
		Scope:    set.Scope,
		Items:    set.Candidates(),
		Selected: make(map[int]bool),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Chosen returns the selected candidates in display order.
func (m Model) Chosen() []types.Candidate {
	out := make([]types.Candidate, 0, len(m.Selected))
	for i, item := range m.Items {
		if m.Selected[i] {
			out = append(out, item)
		}
	}
	return out
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// An interrupt aborts the entire run, not just this prompt.
		if msg.String() == "ctrl+c" {
			m.Outcome = OutcomeInterrupted
			return m, tea.Quit
		}

		switch m.ViewState {
		case StateSelecting:
			return m.updateSelecting(msg)
		case StateConfirming:
			return m.updateConfirming(msg)
		}
	}

	return m, nil
}

func (m Model) updateSelecting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Outcome = OutcomeAborted
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(m.Items) > 0 {
			if m.Selected[m.Cursor] {
				delete(m.Selected, m.Cursor)
			} else {
				m.Selected[m.Cursor] = true
			}
		}

	case key.Matches(msg, m.keys.All):
		if len(m.Selected) == len(m.Items) {
			m.Selected = make(map[int]bool)
		} else {
			for i := range m.Items {
				m.Selected[i] = true
			}
		}

	case key.Matches(msg, m.keys.Confirm):
		if len(m.Selected) > 0 {
			m.ViewState = StateConfirming
		}
	}

	return m, nil
}

func (m Model) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.Outcome = OutcomeConfirmed
		return m, tea.Quit
	case "n", "N", "esc":
		m.ViewState = StateSelecting
	case "q":
		m.Outcome = OutcomeAborted
		return m, tea.Quit
	}
	return m, nil
}

func categoryLabel(category types.Category) string {
	if category == types.CategoryMerged {
		return successStyle.Render("(merged)")
	}
	return warningStyle.Render("(stale)")
}

func (m Model) renderSelecting(b *strings.Builder) {
	b.WriteString(headingStyle.Render(fmt.Sprintf("Select %s branches to delete:", m.Scope)) + "\n")

	for i, item := range m.Items {
		cursor := " "
		if m.Cursor == i {
			cursor = cursorStyle.Render(">")
		}
		checkbox := "[ ]"
		if m.Selected[i] {
			checkbox = selectedStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s %s %s", checkbox, item.Name, categoryLabel(item.Category))
		if m.Cursor == i {
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + " " + line + "\n")
	}

	b.WriteString(fmt.Sprintf("\nSelected: %d of %d\n", len(m.Selected), len(m.Items)))
	b.WriteString(m.help.View(m.keys))
}

func (m Model) renderConfirming(b *strings.Builder) {
	b.WriteString(headingStyle.Render(fmt.Sprintf("Confirm %s deletions:", m.Scope)) + "\n")

	hasForce := false
	for _, item := range m.Chosen() {
		line := fmt.Sprintf("  - %s %s", item.Name, categoryLabel(item.Category))
		if item.Scope == types.ScopeLocal && item.Category == types.CategoryStale {
			// Stale local branches are force-deleted; unmerged work
			// on them is gone for good.
			line += " " + forceDeleteStyle.Render("[force]")
			hasForce = true
		}
		b.WriteString(line + "\n")
	}

	if hasForce {
		b.WriteString("\n" + warningStyle.Render(
			"Branches marked [force] may contain unmerged work that will be permanently lost.") + "\n")
	}

	b.WriteString("\n" + confirmPromptStyle.Render("Proceed? (y/N) "))
	b.WriteString(helpTextStyle.Render("  n: back, q: abort run"))
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	switch m.ViewState {
	case StateSelecting:
		m.renderSelecting(&b)
	case StateConfirming:
		m.renderConfirming(&b)
	}
	return docStyle.Render(b.String())
}
