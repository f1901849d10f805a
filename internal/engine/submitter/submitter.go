// Package submitter persists completed selections, one request per dependent.
package submitter

import (
	"context"
	"fmt"

	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Submitter fans assignment requests out to the backend and records every outcome.
type Submitter struct {
	writer ports.AssignmentWriter
	logger ports.Logger
	limit  int
}

// New creates a Submitter that keeps at most limit requests in flight.
func New(writer ports.AssignmentWriter, log ports.Logger, limit int) *Submitter {
	if limit < 1 {
		limit = domain.DefaultSubmitConcurrency
	}
	return &Submitter{
		writer: writer,
		logger: log,
		limit:  limit,
	}
}

// Submit places every dependent under principalID. Duplicate ids are sent once.
// Requests outlive cancellation of ctx so that an abandoned save still completes.
func (s *Submitter) Submit(ctx context.Context, principalID int64, dependentIDs []int64) domain.SubmitResult {
	ids := unique(dependentIDs)
	errs := make([]error, len(ids))
	ctx = context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(s.limit)

	for i, id := range ids {
		g.Go(func() error {
			errs[i] = s.writer.AssignManager(ctx, domain.Assignment{
				EmployeeID:         id,
				ReportingManagerID: principalID,
			})
			return nil
		})
	}
	_ = g.Wait()

	return s.collect("assign employee", ids, errs)
}

// Promote issues the HR promotion for a single employee.
func (s *Submitter) Promote(ctx context.Context, employeeID int64) domain.SubmitResult {
	err := s.writer.PromoteToHR(context.WithoutCancel(ctx), employeeID)
	return s.collect("promote employee", []int64{employeeID}, []error{err})
}

func (s *Submitter) collect(action string, ids []int64, errs []error) domain.SubmitResult {
	res := domain.SubmitResult{
		Succeeded: make([]int64, 0, len(ids)),
	}
	for i, id := range ids {
		if errs[i] == nil {
			res.Succeeded = append(res.Succeeded, id)
			continue
		}
		res.Failed = append(res.Failed, domain.Failure{ID: id, Reason: errs[i].Error()})
		if s.logger != nil {
			s.logger.Warn(fmt.Sprintf("failed to %s %d: %v", action, id, errs[i]))
		}
	}
	return res
}

func unique(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
