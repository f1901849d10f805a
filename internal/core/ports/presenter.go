package ports

import (
	"time"

	"go.trai.ch/hrdesk/internal/core/domain"
)

// Presenter renders results for the operator.
// It also receives backend call events so that verbose runs can trace network activity.
//
//go:generate mockgen -source=presenter.go -destination=mocks/mock_presenter.go -package=mocks
type Presenter interface {
	// OnCallStart is called when a backend call begins.
	// spanID: unique identifier for this call
	// name: human-readable call name, such as "GET /employees"
	OnCallStart(spanID, name string, startTime time.Time)

	// OnCallComplete is called when a backend call finishes.
	// err: nil if successful, error otherwise
	OnCallComplete(spanID string, endTime time.Time, err error)

	// ShowCandidates lists the eligible employees of a picker.
	ShowCandidates(kind domain.SelectionKind, candidates []domain.Candidate)

	// ShowSubmitResult reports the outcome of a save. names maps ids to display names.
	ShowSubmitResult(result domain.SubmitResult, names map[int64]string)

	// ShowLiaisons lists the reporting manager and HR coordinator of each employee.
	ShowLiaisons(liaisons []domain.Liaison)

	// ShowManagers lists the reporting managers.
	ShowManagers(managers []domain.ManagerRecord)

	// ShowManagerDetails prints one manager and its team.
	ShowManagerDetails(details domain.ManagerDetails)
}
