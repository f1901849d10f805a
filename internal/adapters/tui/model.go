// Package tui provides the interactive picker for team assignment and HR promotion.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/engine/session"
)

// chromeHeight is the number of lines the view uses around the candidate list.
const chromeHeight = 7

// Source produces the candidates shown by the picker.
// Invalidate is called after a save reaches the backend, so the next load sees its effect.
type Source interface {
	Candidates(ctx context.Context, sel domain.SelectionContext, query string) ([]domain.Candidate, error)
	Invalidate()
}

// Phase is the step of the selection the picker is showing.
type Phase uint8

const (
	// PhaseManager picks the reporting manager of a team assignment.
	PhaseManager Phase = iota
	// PhaseTeam toggles the members of the chosen manager's team.
	PhaseTeam
	// PhaseHR picks the employee to promote.
	PhaseHR
	// PhaseResult shows the outcome of the last save.
	PhaseResult
)

// MsgCandidates carries the outcome of a candidate load.
type MsgCandidates struct {
	Seq        uint64
	Candidates []domain.Candidate
	Err        error
}

// MsgSaved carries the outcome of a save.
type MsgSaved struct {
	Result domain.SubmitResult
	Err    error
}

// Model is the picker state.
type Model struct {
	Query      string
	Candidates []domain.Candidate
	Cursor     int
	ListOffset int
	ListHeight int
	Loading    bool
	Saving     bool
	Err        error
	Result     *domain.SubmitResult

	ctx     context.Context //nolint:containedctx // Commands run outside Update.
	source  Source
	session *session.Session
	names   map[int64]string
	seq     uint64
	lastRes domain.SubmitResult
	lastErr error
}

// NewModel creates a picker driving sess with candidates from source.
func NewModel(ctx context.Context, source Source, sess *session.Session) *Model {
	return &Model{
		ctx:     ctx,
		source:  source,
		session: sess,
		names:   make(map[int64]string),
	}
}

// Init starts the first candidate load.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// Phase returns the step currently shown.
func (m *Model) Phase() Phase {
	if m.Result != nil {
		return PhaseResult
	}
	if m.session.Kind() == domain.PickHR {
		return PhaseHR
	}
	if m.session.Principal() == nil {
		return PhaseManager
	}
	return PhaseTeam
}

// Outcome returns the result and error of the last save that reached the backend.
func (m *Model) Outcome() (domain.SubmitResult, error) {
	return m.lastRes, m.lastErr
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ListHeight = max(msg.Height-chromeHeight, 1)
		m.ensureVisible()

	case MsgCandidates:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.Loading = false
		m.Err = msg.Err
		m.Candidates = msg.Candidates
		for _, c := range msg.Candidates {
			m.names[c.ID] = c.Name
		}
		m.Cursor = min(m.Cursor, max(len(m.Candidates)-1, 0))
		m.ensureVisible()

	case MsgSaved:
		m.Saving = false
		if errors.Is(msg.Err, domain.ErrValidation) {
			m.Err = msg.Err
			return m, nil
		}
		m.source.Invalidate()
		res := msg.Result
		m.Result = &res
		m.Err = nil
		m.lastRes, m.lastErr = msg.Result, msg.Err

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.Saving {
		return m, nil
	}
	if m.Phase() == PhaseResult {
		return m.handleResultKey(msg)
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyCtrlP:
		if m.Cursor > 0 {
			m.Cursor--
			m.ensureVisible()
		}
	case tea.KeyDown, tea.KeyCtrlN:
		if m.Cursor < len(m.Candidates)-1 {
			m.Cursor++
			m.ensureVisible()
		}
	case tea.KeyEnter:
		return m, m.choose()
	case tea.KeyCtrlS:
		if m.Phase() == PhaseTeam {
			return m, m.save()
		}
	case tea.KeyEsc:
		return m, m.back()
	case tea.KeyBackspace:
		if m.Query == "" {
			return m, nil
		}
		runes := []rune(m.Query)
		m.Query = string(runes[:len(runes)-1])
		return m, m.requery()
	case tea.KeySpace:
		m.Query += " "
		return m, m.requery()
	case tea.KeyRunes:
		m.Query += string(msg.Runes)
		return m, m.requery()
	}

	return m, nil
}

func (m *Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		if m.session.State() == session.StateFailed {
			m.Result = nil
			return m, m.save()
		}
	case "enter":
		if err := m.session.Reset(); err != nil {
			m.Err = err
			return m, nil
		}
		m.Result = nil
		m.Query = ""
		m.Cursor = 0
		return m, m.load()
	}
	return m, nil
}

// choose applies enter to the highlighted candidate.
func (m *Model) choose() tea.Cmd {
	c, ok := m.current()
	if !ok {
		return nil
	}

	switch m.Phase() {
	case PhaseManager:
		if err := m.session.ChoosePrincipal(c.ID); err != nil {
			m.Err = err
			return nil
		}
		m.Query = ""
		m.Cursor = 0
		return m.load()
	case PhaseTeam:
		if _, err := m.session.Toggle(c.ID); err != nil {
			m.Err = err
		}
		return nil
	case PhaseHR:
		if err := m.session.Choose(c); err != nil {
			m.Err = err
			return nil
		}
		return m.save()
	default:
		return nil
	}
}

// back clears the query first, then steps from the team back to the manager.
func (m *Model) back() tea.Cmd {
	if m.Query != "" {
		m.Query = ""
		return m.requery()
	}
	if m.Phase() != PhaseTeam {
		return tea.Quit
	}
	if err := m.session.Reset(); err != nil {
		m.Err = err
		return nil
	}
	m.Cursor = 0
	return m.load()
}

func (m *Model) current() (domain.Candidate, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Candidates) {
		return domain.Candidate{}, false
	}
	return m.Candidates[m.Cursor], true
}

func (m *Model) requery() tea.Cmd {
	m.Cursor = 0
	m.ListOffset = 0
	return m.load()
}

func (m *Model) load() tea.Cmd {
	m.seq++
	m.Loading = true
	seq := m.seq
	sel := m.session.Context()
	query := m.Query
	ctx, source := m.ctx, m.source

	return func() tea.Msg {
		candidates, err := source.Candidates(ctx, sel, query)
		return MsgCandidates{Seq: seq, Candidates: candidates, Err: err}
	}
}

func (m *Model) save() tea.Cmd {
	m.Saving = true
	m.Err = nil
	ctx, sess := m.ctx, m.session

	return func() tea.Msg {
		res, err := sess.Save(ctx)
		return MsgSaved{Result: res, Err: err}
	}
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.Cursor < m.ListOffset {
		m.ListOffset = m.Cursor
	} else if m.Cursor >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.Cursor - m.ListHeight + 1
	}
}
