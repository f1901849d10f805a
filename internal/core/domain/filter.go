package domain

import "strings"

// SelectionKind identifies which picker a candidate list is produced for.
type SelectionKind uint8

const (
	// PickTeam selects team members for a chosen reporting manager.
	PickTeam SelectionKind = iota
	// PickManager selects a new reporting manager.
	PickManager
	// PickHR selects an employee for promotion to HR.
	PickHR
)

// String returns the picker name used in logs and CLI output.
func (k SelectionKind) String() string {
	switch k {
	case PickTeam:
		return "team"
	case PickManager:
		return "manager"
	case PickHR:
		return "hr"
	default:
		return "unknown"
	}
}

// SelectionContext carries the picker kind and, for team picking, the chosen manager.
type SelectionContext struct {
	Kind        SelectionKind
	PrincipalID *int64
}

// Candidate is an employee eligible for a selection.
type Candidate struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	CorporateEmail string `json:"corporateEmail,omitempty"`
	UserID         *int64 `json:"userId,omitempty"`
}

// CandidateOf projects an employee onto its candidate view.
func CandidateOf(e Employee) Candidate {
	return Candidate{
		ID:             e.ID,
		Name:           e.DisplayName(),
		Email:          e.Email,
		CorporateEmail: e.CorporateEmail,
		UserID:         e.UserID,
	}
}

// Eligible reports whether e may appear in the given selection, ignoring any query.
func Eligible(e Employee, idx AssignmentIndex, sel SelectionContext) bool {
	class := Classify(e)
	if class == ClassSystemAdmin {
		return false
	}

	switch sel.Kind {
	case PickTeam:
		if idx.ExistingManagers.Has(e.ID) || idx.AssignedEmployees.Has(e.ID) {
			return false
		}
		if sel.PrincipalID != nil && *sel.PrincipalID == e.ID {
			return false
		}
	case PickManager:
		if idx.ExistingManagers.Has(e.ID) {
			return false
		}
	case PickHR:
		if class == ClassHR {
			return false
		}
		if e.UserID != nil && idx.HRUserIDs.Has(*e.UserID) {
			return false
		}
	}

	return true
}

// MatchesQuery reports whether the query is a case-insensitive substring of the display name
// or of the personal email. An empty query matches everything.
func MatchesQuery(e Employee, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.DisplayName()), q) ||
		strings.Contains(strings.ToLower(e.Email), q)
}

// FilterCandidates returns the eligible employees matching query, in roster order.
func FilterCandidates(roster []Employee, idx AssignmentIndex, query string, sel SelectionContext) []Candidate {
	out := make([]Candidate, 0, len(roster))
	for _, e := range roster {
		if !Eligible(e, idx, sel) || !MatchesQuery(e, query) {
			continue
		}
		out = append(out, CandidateOf(e))
	}
	return out
}
