package domain

import "slices"

// IDSet is a set of integer identifiers.
type IDSet map[int64]struct{}

// NewIDSet returns a set holding the given ids.
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set contains nothing.
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// AssignmentIndex holds the lookup sets used for exclusion filtering.
// It is derived from backend collections and never mutated after BuildIndex returns it.
type AssignmentIndex struct {
	ExistingManagers  IDSet
	AssignedEmployees IDSet
	HRUserIDs         IDSet
}

// BuildIndex derives an AssignmentIndex from the manager, assignment and user collections.
func BuildIndex(managers []ManagerRecord, assignments []AssignmentRecord, users []UserRecord) AssignmentIndex {
	idx := AssignmentIndex{
		ExistingManagers:  make(IDSet, len(managers)),
		AssignedEmployees: make(IDSet, len(assignments)),
		HRUserIDs:         make(IDSet),
	}

	for _, m := range managers {
		idx.ExistingManagers[m.ID] = struct{}{}
	}

	for _, a := range assignments {
		if a.ReportingManagerID != nil {
			idx.AssignedEmployees[a.EmployeeID] = struct{}{}
		}
	}

	for _, u := range users {
		if ClassifyRole(u.Role) == ClassHR {
			idx.HRUserIDs[u.ID] = struct{}{}
		}
	}

	return idx
}
