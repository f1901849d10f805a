package ports

import (
	"context"

	"go.trai.ch/hrdesk/internal/core/domain"
)

// RosterSource loads the full employee roster.
//
//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type RosterSource interface {
	// ListEmployees fetches every employee known to the backend.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// AssignmentWriter persists assignment and promotion requests.
type AssignmentWriter interface {
	// AssignManager places one employee under a reporting manager.
	AssignManager(ctx context.Context, a domain.Assignment) error

	// PromoteToHR grants the HR role to the employee's user account.
	PromoteToHR(ctx context.Context, employeeID int64) error
}

// Backend is the full HRMS REST surface the client consumes.
type Backend interface {
	RosterSource
	AssignmentWriter

	// ListManagers fetches the current reporting managers.
	ListManagers(ctx context.Context) ([]domain.ManagerRecord, error)

	// ListAssignments fetches every employee's reporting manager and HR coordinator.
	ListAssignments(ctx context.Context) ([]domain.AssignmentRecord, error)

	// ListUsers fetches the login accounts.
	ListUsers(ctx context.Context) ([]domain.UserRecord, error)

	// CreateEmployee creates an employee together with its login account.
	CreateEmployee(ctx context.Context, e domain.NewEmployee) (domain.Employee, error)

	// ManagerDetails fetches one reporting manager and its team.
	ManagerDetails(ctx context.Context, managerID int64) (domain.ManagerDetails, error)

	// RemoveManager revokes the reporting manager role.
	RemoveManager(ctx context.Context, managerID int64) error

	// RemoveTeamMember detaches an employee from its reporting manager.
	RemoveTeamMember(ctx context.Context, employeeID int64) error
}
