package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/engine/session"
	"go.trai.ch/zerr"
)

// Run shows the picker until the operator quits and returns the outcome of the last save.
func Run(ctx context.Context, source Source, sess *session.Session, opts ...tea.ProgramOption) (domain.SubmitResult, error) {
	m := NewModel(ctx, source, sess)

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return domain.SubmitResult{}, zerr.Wrap(err, "interactive picker failed")
	}
	return m.Outcome()
}
