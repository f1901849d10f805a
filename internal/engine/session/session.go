// Package session implements the selection state machine behind a single
// team assignment or HR promotion.
package session

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports"
	"go.trai.ch/zerr"
)

// State is the lifecycle position of a session.
type State uint8

const (
	// StateEmpty means nothing has been chosen yet.
	StateEmpty State = iota
	// StatePrincipalChosen means a manager (or the HR candidate) is chosen and no dependents are.
	StatePrincipalChosen
	// StateDependentsChosen means at least one team member is chosen.
	StateDependentsChosen
	// StateSaving means a save is in flight.
	StateSaving
	// StateSaved means the last save succeeded completely.
	StateSaved
	// StateFailed means the last save had at least one failure.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePrincipalChosen:
		return "principal chosen"
	case StateDependentsChosen:
		return "dependents chosen"
	case StateSaving:
		return "saving"
	case StateSaved:
		return "saved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session accumulates the choices of one selection and persists them on Save.
// It is safe for concurrent use.
type Session struct {
	kind      domain.SelectionKind
	submitter ports.Submitter

	mu         sync.Mutex
	state      State
	principal  *int64
	candidate  *domain.Candidate
	dependents []int64
	result     domain.SubmitResult
}

// NewTeam creates a session that assigns team members to a reporting manager.
func NewTeam(submitter ports.Submitter) *Session {
	return &Session{kind: domain.PickTeam, submitter: submitter}
}

// NewPromotion creates a session that promotes a single employee to HR.
func NewPromotion(submitter ports.Submitter) *Session {
	return &Session{kind: domain.PickHR, submitter: submitter}
}

// Kind returns the selection kind the session was created for.
func (s *Session) Kind() domain.SelectionKind {
	return s.kind
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Principal returns the chosen manager id, or nil.
func (s *Session) Principal() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return nil
	}
	id := *s.principal
	return &id
}

// Candidate returns the employee chosen for promotion.
func (s *Session) Candidate() (domain.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.candidate == nil {
		return domain.Candidate{}, false
	}
	return *s.candidate, true
}

// Dependents returns the chosen team members in the order they were selected.
func (s *Session) Dependents() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.dependents)
}

// Selected reports whether id is currently a chosen team member.
func (s *Session) Selected(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.dependents, id)
}

// Result returns the outcome of the most recent save.
func (s *Session) Result() domain.SubmitResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Context returns the filter context for the next picker of this session.
func (s *Session) Context() domain.SelectionContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind == domain.PickHR {
		return domain.SelectionContext{Kind: domain.PickHR}
	}
	if s.principal == nil {
		return domain.SelectionContext{Kind: domain.PickManager}
	}
	id := *s.principal
	return domain.SelectionContext{Kind: domain.PickTeam, PrincipalID: &id}
}

// ChoosePrincipal sets the reporting manager and clears every chosen team member.
func (s *Session) ChoosePrincipal(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind != domain.PickTeam {
		return zerr.With(zerr.Wrap(domain.ErrWrongSelectionKind, "choose principal"), "kind", s.kind.String())
	}
	if s.state == StateSaving {
		return domain.ErrSaveInProgress
	}

	s.principal = &id
	s.dependents = nil
	s.result = domain.SubmitResult{}
	s.state = StatePrincipalChosen
	return nil
}

// Toggle flips the membership of id in the team and reports whether it is now selected.
func (s *Session) Toggle(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind != domain.PickTeam {
		return false, zerr.With(zerr.Wrap(domain.ErrWrongSelectionKind, "toggle team member"), "kind", s.kind.String())
	}
	if s.state == StateSaving {
		return false, domain.ErrSaveInProgress
	}
	if s.principal == nil {
		return false, errors.Join(domain.ErrValidation, domain.ErrNoPrincipal)
	}
	if *s.principal == id {
		return false, zerr.With(zerr.Wrap(domain.ErrNotEligible, "manager cannot report to themselves"), "employee_id", id)
	}

	selected := true
	if i := slices.Index(s.dependents, id); i >= 0 {
		s.dependents = slices.Delete(s.dependents, i, i+1)
		selected = false
	} else {
		s.dependents = append(s.dependents, id)
	}

	if len(s.dependents) > 0 {
		s.state = StateDependentsChosen
	} else {
		s.state = StatePrincipalChosen
	}
	return selected, nil
}

// Choose selects the single employee to promote, replacing any earlier choice.
func (s *Session) Choose(c domain.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind != domain.PickHR {
		return zerr.With(zerr.Wrap(domain.ErrWrongSelectionKind, "choose candidate"), "kind", s.kind.String())
	}
	if s.state == StateSaving {
		return domain.ErrSaveInProgress
	}

	s.candidate = &c
	s.result = domain.SubmitResult{}
	s.state = StatePrincipalChosen
	return nil
}

// Reset discards every choice. It is refused while a save is in flight.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSaving {
		return domain.ErrSaveInProgress
	}
	s.clearLocked()
	s.result = domain.SubmitResult{}
	s.state = StateEmpty
	return nil
}

// Save validates the choices and persists them. Validation failures submit nothing.
// On complete success the choices are cleared. On partial failure only the failed
// team members stay selected so that a second Save retries exactly those.
func (s *Session) Save(ctx context.Context) (domain.SubmitResult, error) {
	s.mu.Lock()
	if s.state == StateSaving {
		s.mu.Unlock()
		return domain.SubmitResult{}, domain.ErrSaveInProgress
	}
	if err := s.validateLocked(); err != nil {
		s.mu.Unlock()
		return domain.SubmitResult{}, err
	}

	kind := s.kind
	var principal int64
	var dependents []int64
	var candidate int64
	if kind == domain.PickHR {
		candidate = s.candidate.ID
	} else {
		principal = *s.principal
		dependents = slices.Clone(s.dependents)
	}
	s.state = StateSaving
	s.mu.Unlock()

	var res domain.SubmitResult
	if kind == domain.PickHR {
		res = s.submitter.Promote(ctx, candidate)
	} else {
		res = s.submitter.Submit(ctx, principal, dependents)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = res
	if res.OK() {
		s.clearLocked()
		s.state = StateSaved
		return res, nil
	}

	s.state = StateFailed
	if kind == domain.PickTeam {
		s.dependents = res.FailedIDs()
	}
	err := zerr.With(zerr.Wrap(domain.ErrSubmitIncomplete, "save"), "failed", len(res.Failed))
	return res, zerr.With(err, "succeeded", len(res.Succeeded))
}

func (s *Session) validateLocked() error {
	if s.kind == domain.PickHR {
		if s.candidate == nil {
			return errors.Join(domain.ErrValidation, domain.ErrNoCandidate)
		}
		if s.candidate.UserID == nil {
			return errors.Join(domain.ErrValidation, domain.ErrNoUserAccount)
		}
		return nil
	}

	if s.principal == nil {
		return errors.Join(domain.ErrValidation, domain.ErrNoPrincipal)
	}
	if len(s.dependents) == 0 {
		return errors.Join(domain.ErrValidation, domain.ErrNoDependents)
	}
	return nil
}

func (s *Session) clearLocked() {
	s.principal = nil
	s.candidate = nil
	s.dependents = nil
}
