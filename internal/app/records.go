package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// liaisons joins the roster with the current assignment records.
func (a *App) liaisons(ctx context.Context) ([]domain.Employee, []domain.Liaison, error) {
	var (
		roster      []domain.Employee
		assignments []domain.AssignmentRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = a.roster(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = a.backend.ListAssignments(gctx)
		return zerr.Wrap(err, "list assignments")
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return roster, domain.BuildLiaisons(roster, assignments), nil
}

// Liaisons lists the reporting manager and HR coordinator of every employee.
func (a *App) Liaisons(ctx context.Context) error {
	_, liaisons, err := a.liaisons(ctx)
	if err != nil {
		return err
	}
	a.presenter.ShowLiaisons(liaisons)
	return nil
}

// Managers lists the current reporting managers.
func (a *App) Managers(ctx context.Context) error {
	managers, err := a.backend.ListManagers(ctx)
	if err != nil {
		return zerr.Wrap(err, "list reporting managers")
	}
	a.presenter.ShowManagers(managers)
	return nil
}

// ManagerDetails shows one reporting manager and its team.
func (a *App) ManagerDetails(ctx context.Context, managerID int64) error {
	details, err := a.backend.ManagerDetails(ctx, managerID)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "load reporting manager"), "manager_id", managerID)
	}
	a.presenter.ShowManagerDetails(details)
	return nil
}

// RemoveManager revokes the reporting manager role of managerID.
func (a *App) RemoveManager(ctx context.Context, managerID int64) error {
	if err := a.backend.RemoveManager(ctx, managerID); err != nil {
		return zerr.With(zerr.Wrap(err, "remove reporting manager"), "manager_id", managerID)
	}
	a.logger.Info(fmt.Sprintf("removed reporting manager #%d", managerID))
	return nil
}

// RemoveTeamMember detaches employeeID from its reporting manager.
func (a *App) RemoveTeamMember(ctx context.Context, employeeID int64) error {
	if err := a.backend.RemoveTeamMember(ctx, employeeID); err != nil {
		return zerr.With(zerr.Wrap(err, "remove team member"), "employee_id", employeeID)
	}
	a.logger.Info(fmt.Sprintf("removed employee #%d from their team", employeeID))
	return nil
}

// AddEmployee validates and creates an employee with a login account, then refreshes the roster.
func (a *App) AddEmployee(ctx context.Context, e domain.NewEmployee) (domain.Employee, error) {
	e.Normalize()
	e.CompleteCorporateEmail(a.settings.EmailDomain)

	if err := a.validate.Struct(e); err != nil {
		return domain.Employee{}, errors.Join(domain.ErrInvalidEmployee, err)
	}

	created, err := a.backend.CreateEmployee(ctx, e)
	if err != nil {
		return domain.Employee{}, zerr.With(zerr.Wrap(err, "create employee"), "email", e.Email)
	}
	a.logger.Info(fmt.Sprintf("created %s #%d", created.DisplayName(), created.ID))

	if v := a.directory.Refresh(ctx); v.Err != nil {
		a.logger.Warn("failed to refresh roster: " + v.Err.Error())
	}
	return created, nil
}

// Export writes the roster and its liaisons to a workbook at path.
func (a *App) Export(ctx context.Context, path string) error {
	roster, liaisons, err := a.liaisons(ctx)
	if err != nil {
		return err
	}
	if err := a.exporter.Export(path, roster, liaisons); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("exported %d employees to %s", len(roster), path))
	return nil
}

// Refresh refetches the roster regardless of its age.
func (a *App) Refresh(ctx context.Context) error {
	v := a.directory.Refresh(ctx)
	if v.Err != nil {
		return zerr.Wrap(v.Err, "refresh roster")
	}
	a.logger.Info(fmt.Sprintf("roster refreshed: %d employees", len(v.Employees)))
	return nil
}
