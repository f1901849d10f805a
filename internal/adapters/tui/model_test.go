package tui_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hrdesk/internal/adapters/tui"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports/mocks"
	"go.trai.ch/hrdesk/internal/engine/session"
	"go.uber.org/mock/gomock"
)

func ptr(v int64) *int64 { return &v }

var roster = []domain.Employee{
	{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", UserID: ptr(11)},
	{ID: 2, FirstName: "Bob", LastName: "Stone", Email: "bob@example.com"},
	{ID: 3, FirstName: "Cara", LastName: "Diaz", Email: "cara@example.com", UserID: ptr(13)},
}

type fakeSource struct {
	sels          []domain.SelectionContext
	queries       []string
	index         domain.AssignmentIndex
	afterSave     *domain.AssignmentIndex
	invalidations int
}

func (f *fakeSource) Candidates(_ context.Context, sel domain.SelectionContext, query string) ([]domain.Candidate, error) {
	f.sels = append(f.sels, sel)
	f.queries = append(f.queries, query)
	return domain.FilterCandidates(roster, f.index, query, sel), nil
}

func (f *fakeSource) Invalidate() {
	f.invalidations++
	if f.afterSave != nil {
		f.index = *f.afterSave
	}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step sends msg to the model and feeds the resulting command's message back once.
func step(t *testing.T, m *tui.Model, msg tea.Msg) *tui.Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(*tui.Model)
	if cmd == nil {
		return m
	}
	next := cmd()
	if _, ok := next.(tea.QuitMsg); ok {
		return m
	}
	updated, _ = m.Update(next)
	return updated.(*tui.Model)
}

func start(t *testing.T, sess *session.Session) (*tui.Model, *fakeSource) {
	t.Helper()
	src := &fakeSource{}
	m := tui.NewModel(context.Background(), src, sess)
	updated, _ := m.Update(m.Init()())
	return updated.(*tui.Model), src
}

func TestModel_InitLoadsManagers(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, src := start(t, session.NewTeam(mocks.NewMockSubmitter(ctrl)))

	assert.Equal(t, tui.PhaseManager, m.Phase())
	assert.False(t, m.Loading)
	require.Len(t, m.Candidates, 3)
	require.Len(t, src.sels, 1)
	assert.Equal(t, domain.PickManager, src.sels[0].Kind)
	assert.Contains(t, m.View(), "Choose a reporting manager")
}

func TestModel_TypingFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, src := start(t, session.NewTeam(mocks.NewMockSubmitter(ctrl)))

	m = step(t, m, runes("ca"))
	require.Len(t, m.Candidates, 1)
	assert.Equal(t, int64(3), m.Candidates[0].ID)
	assert.Equal(t, "ca", src.queries[len(src.queries)-1])

	m = step(t, m, key(tea.KeyBackspace))
	assert.Equal(t, "c", m.Query)

	m = step(t, m, key(tea.KeyEsc))
	assert.Empty(t, m.Query)
	assert.Len(t, m.Candidates, 3)
}

func TestModel_StaleLoadIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := start(t, session.NewTeam(mocks.NewMockSubmitter(ctrl)))

	_, first := m.Update(runes("b"))
	_, second := m.Update(key(tea.KeyBackspace))

	updated, _ := m.Update(second())
	m = updated.(*tui.Model)
	require.Len(t, m.Candidates, 3)

	updated, _ = m.Update(first())
	m = updated.(*tui.Model)
	assert.Len(t, m.Candidates, 3)
}

func TestModel_AssignTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub := mocks.NewMockSubmitter(ctrl)
	sub.EXPECT().
		Submit(gomock.Any(), int64(1), []int64{3}).
		Return(domain.SubmitResult{Succeeded: []int64{3}})

	m, src := start(t, session.NewTeam(sub))

	m = step(t, m, key(tea.KeyEnter))
	assert.Equal(t, tui.PhaseTeam, m.Phase())
	last := src.sels[len(src.sels)-1]
	assert.Equal(t, domain.PickTeam, last.Kind)
	require.NotNil(t, last.PrincipalID)
	assert.Equal(t, int64(1), *last.PrincipalID)
	require.Len(t, m.Candidates, 2)

	m = step(t, m, key(tea.KeyDown))
	m = step(t, m, key(tea.KeyEnter))
	view := m.View()
	assert.Contains(t, view, "Team for Ann Lee (1 selected)")
	assert.Contains(t, view, "◉ Cara Diaz")
	assert.Contains(t, view, "○ Bob Stone")

	m = step(t, m, key(tea.KeyCtrlS))
	assert.Equal(t, tui.PhaseResult, m.Phase())
	assert.False(t, m.Saving)
	assert.Contains(t, m.View(), "✓ Cara Diaz #3")
	assert.Contains(t, m.View(), "1 of 1 saved")

	res, err := m.Outcome()
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, res.Succeeded)

	m = step(t, m, key(tea.KeyEnter))
	assert.Equal(t, tui.PhaseManager, m.Phase())
}

func TestModel_RetryFailedMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub := mocks.NewMockSubmitter(ctrl)
	gomock.InOrder(
		sub.EXPECT().
			Submit(gomock.Any(), int64(1), []int64{2, 3}).
			Return(domain.SubmitResult{
				Succeeded: []int64{2},
				Failed:    []domain.Failure{{ID: 3, Reason: "backend rejected request"}},
			}),
		sub.EXPECT().
			Submit(gomock.Any(), int64(1), []int64{3}).
			Return(domain.SubmitResult{Succeeded: []int64{3}}),
	)

	m, _ := start(t, session.NewTeam(sub))
	m = step(t, m, key(tea.KeyEnter))
	m = step(t, m, key(tea.KeyEnter))
	m = step(t, m, key(tea.KeyDown))
	m = step(t, m, key(tea.KeyEnter))
	m = step(t, m, key(tea.KeyCtrlS))

	view := m.View()
	assert.Contains(t, view, "✗ Cara Diaz #3: backend rejected request")
	assert.Contains(t, view, "1 of 2 saved")
	assert.Contains(t, view, "r retry failed")
	_, err := m.Outcome()
	require.ErrorIs(t, err, domain.ErrSubmitIncomplete)

	m = step(t, m, runes("r"))
	assert.Contains(t, m.View(), "1 of 1 saved")
	_, err = m.Outcome()
	require.NoError(t, err)
}

func TestModel_EscapeStepsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := start(t, session.NewTeam(mocks.NewMockSubmitter(ctrl)))

	m = step(t, m, key(tea.KeyEnter))
	require.Equal(t, tui.PhaseTeam, m.Phase())

	m = step(t, m, key(tea.KeyEsc))
	assert.Equal(t, tui.PhaseManager, m.Phase())
	assert.Len(t, m.Candidates, 3)

	_, cmd := m.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_PromoteWithoutAccountIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, src := start(t, session.NewPromotion(mocks.NewMockSubmitter(ctrl)))
	assert.Equal(t, domain.PickHR, src.sels[0].Kind)
	assert.Contains(t, m.View(), "(no account)")

	m = step(t, m, key(tea.KeyDown))
	m = step(t, m, key(tea.KeyEnter))

	assert.Equal(t, tui.PhaseHR, m.Phase())
	require.ErrorIs(t, m.Err, domain.ErrNoUserAccount)
	assert.Contains(t, m.View(), "selected employee does not have a user account")
}

func TestModel_Promote(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub := mocks.NewMockSubmitter(ctrl)
	sub.EXPECT().Promote(gomock.Any(), int64(1)).Return(domain.SubmitResult{Succeeded: []int64{1}})

	m, _ := start(t, session.NewPromotion(sub))
	m = step(t, m, key(tea.KeyEnter))

	assert.Equal(t, tui.PhaseResult, m.Phase())
	assert.Contains(t, m.View(), "✓ Ann Lee #1")
}

func TestModel_ScrollKeepsCursorVisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := start(t, session.NewTeam(mocks.NewMockSubmitter(ctrl)))

	m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 9})
	require.Equal(t, 2, m.ListHeight)

	m = step(t, m, key(tea.KeyDown))
	m = step(t, m, key(tea.KeyDown))
	assert.Equal(t, 2, m.Cursor)
	assert.Equal(t, 1, m.ListOffset)
	assert.NotContains(t, m.View(), "Ann Lee")

	m = step(t, m, key(tea.KeyDown))
	assert.Equal(t, 2, m.Cursor)

	m = step(t, m, key(tea.KeyUp))
	m = step(t, m, key(tea.KeyUp))
	assert.Equal(t, 0, m.ListOffset)
}

func TestModel_SaveInvalidatesSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub := mocks.NewMockSubmitter(ctrl)
	sub.EXPECT().Promote(gomock.Any(), int64(1)).Return(domain.SubmitResult{Succeeded: []int64{1}})

	m, src := start(t, session.NewPromotion(sub))
	src.afterSave = &domain.AssignmentIndex{HRUserIDs: domain.NewIDSet(11)}

	m = step(t, m, key(tea.KeyEnter))
	require.Equal(t, tui.PhaseResult, m.Phase())
	assert.Equal(t, 1, src.invalidations)

	m = step(t, m, key(tea.KeyEnter))
	assert.Equal(t, tui.PhaseHR, m.Phase())
	require.Len(t, m.Candidates, 2)
	assert.NotContains(t, m.View(), "Ann Lee")
}

func TestModel_RejectedSaveKeepsSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, src := start(t, session.NewPromotion(mocks.NewMockSubmitter(ctrl)))

	m = step(t, m, key(tea.KeyDown))
	m = step(t, m, key(tea.KeyEnter))

	require.ErrorIs(t, m.Err, domain.ErrNoUserAccount)
	assert.Zero(t, src.invalidations)
}
