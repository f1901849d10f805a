package domain

// Failure records why persisting one dependent failed.
type Failure struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

// SubmitResult aggregates the per-dependent outcome of a save.
type SubmitResult struct {
	Succeeded []int64   `json:"succeeded"`
	Failed    []Failure `json:"failed"`
}

// OK reports whether every request succeeded.
func (r SubmitResult) OK() bool {
	return len(r.Failed) == 0
}

// Total returns the number of requests the result covers.
func (r SubmitResult) Total() int {
	return len(r.Succeeded) + len(r.Failed)
}

// FailedIDs returns the ids of the failed dependents in result order.
func (r SubmitResult) FailedIDs() []int64 {
	ids := make([]int64, len(r.Failed))
	for i, f := range r.Failed {
		ids[i] = f.ID
	}
	return ids
}
