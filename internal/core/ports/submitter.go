package ports

import (
	"context"

	"go.trai.ch/hrdesk/internal/core/domain"
)

// Submitter persists the choices of a completed selection.
//
//go:generate mockgen -source=submitter.go -destination=mocks/mock_submitter.go -package=mocks
type Submitter interface {
	// Submit issues one assignment per dependent and reports each outcome.
	// A failure for one dependent never prevents the others from being sent.
	Submit(ctx context.Context, principalID int64, dependentIDs []int64) domain.SubmitResult

	// Promote issues the single HR promotion request for the employee.
	Promote(ctx context.Context, employeeID int64) domain.SubmitResult
}
