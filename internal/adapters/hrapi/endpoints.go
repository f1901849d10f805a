package hrapi

import (
	"context"
	"net/http"
	"strconv"

	"go.trai.ch/hrdesk/internal/core/domain"
)

const (
	employeesPath    = "/employees"
	managersPath     = "/reporting-managers"
	assignmentsPath  = "/reporting-managers/assignments"
	promoteHRPath    = "/reporting-managers/promote-hr/"
	removeMemberPath = "/reporting-managers/remove-member/"
	usersPath        = "/users"
)

// ListEmployees fetches the full roster.
func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	out := []domain.Employee{}
	if err := c.getJSON(ctx, employeesPath, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// ListManagers fetches the current reporting managers.
func (c *Client) ListManagers(ctx context.Context) ([]domain.ManagerRecord, error) {
	out := []domain.ManagerRecord{}
	if err := c.getJSON(ctx, managersPath, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// ListAssignments fetches every employee's manager and HR coordinator.
func (c *Client) ListAssignments(ctx context.Context) ([]domain.AssignmentRecord, error) {
	out := []domain.AssignmentRecord{}
	if err := c.getJSON(ctx, assignmentsPath, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// ListUsers fetches the login accounts.
func (c *Client) ListUsers(ctx context.Context) ([]domain.UserRecord, error) {
	out := []domain.UserRecord{}
	if err := c.getJSON(ctx, usersPath, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// ManagerDetails fetches one manager and its team.
func (c *Client) ManagerDetails(ctx context.Context, managerID int64) (domain.ManagerDetails, error) {
	var out domain.ManagerDetails
	if err := c.getJSON(ctx, managersPath+"/"+pathID(managerID), &out); err != nil {
		return domain.ManagerDetails{}, err
	}
	out.Team = nonNil(out.Team)
	return out, nil
}

// AssignManager places one employee under a reporting manager.
func (c *Client) AssignManager(ctx context.Context, a domain.Assignment) error {
	_, err := c.sendJSON(ctx, http.MethodPost, managersPath, a)
	return err
}

// PromoteToHR grants the HR role to the employee's account.
func (c *Client) PromoteToHR(ctx context.Context, employeeID int64) error {
	_, err := c.sendJSON(ctx, http.MethodPost, promoteHRPath+pathID(employeeID), nil)
	return err
}

// RemoveManager revokes the reporting manager role.
func (c *Client) RemoveManager(ctx context.Context, managerID int64) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, managersPath+"/"+pathID(managerID), nil)
	return err
}

// RemoveTeamMember detaches an employee from its manager.
func (c *Client) RemoveTeamMember(ctx context.Context, employeeID int64) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, removeMemberPath+pathID(employeeID), nil)
	return err
}

// createEmployeeRequest is the POST /employees payload.
type createEmployeeRequest struct {
	domain.NewEmployee
	CreateAccount bool `json:"createAccount"`
}

// CreateEmployee creates an employee together with its login account.
func (c *Client) CreateEmployee(ctx context.Context, e domain.NewEmployee) (domain.Employee, error) {
	body, err := c.sendJSON(ctx, http.MethodPost, employeesPath, createEmployeeRequest{
		NewEmployee:   e,
		CreateAccount: true,
	})
	if err != nil {
		return domain.Employee{}, err
	}

	var created domain.Employee
	if err := decode(body, employeesPath, &created); err != nil {
		return domain.Employee{}, err
	}
	return created, nil
}

func pathID(v int64) string {
	return strconv.FormatInt(v, 10)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
