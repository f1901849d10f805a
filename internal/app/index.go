package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// roster returns the cached employees. A roster that failed to refresh is still served, with a warning.
func (a *App) roster(ctx context.Context) ([]domain.Employee, error) {
	v := a.directory.Get(ctx)
	if !v.Loaded() {
		if v.Err != nil {
			return nil, errors.Join(domain.ErrRosterUnavailable, v.Err)
		}
		return nil, domain.ErrRosterUnavailable
	}
	if v.Err != nil {
		a.logger.Warn("using roster fetched at " + v.FetchedAt.Format(time.RFC3339) + ": " + v.Err.Error())
	}
	return v.Employees, nil
}

// loadIndex fetches the roster and the three collections the assignment index is built from in parallel.
func (a *App) loadIndex(ctx context.Context) ([]domain.Employee, domain.AssignmentIndex, error) {
	var (
		roster      []domain.Employee
		managers    []domain.ManagerRecord
		assignments []domain.AssignmentRecord
		users       []domain.UserRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = a.roster(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		managers, err = a.backend.ListManagers(gctx)
		return zerr.Wrap(err, "list reporting managers")
	})
	g.Go(func() error {
		var err error
		assignments, err = a.backend.ListAssignments(gctx)
		return zerr.Wrap(err, "list assignments")
	})
	g.Go(func() error {
		var err error
		users, err = a.backend.ListUsers(gctx)
		return zerr.Wrap(err, "list users")
	})
	if err := g.Wait(); err != nil {
		return nil, domain.AssignmentIndex{}, err
	}

	return roster, domain.BuildIndex(managers, assignments, users), nil
}

// step identifies one picker step. The index is rebuilt whenever the step changes or a save lands.
type step struct {
	kind      domain.SelectionKind
	principal int64
}

func stepOf(sel domain.SelectionContext) step {
	s := step{kind: sel.Kind, principal: -1}
	if sel.PrincipalID != nil {
		s.principal = *sel.PrincipalID
	}
	return s
}

// catalog serves picker candidates, filtering locally while the operator types.
type catalog struct {
	load func(context.Context) ([]domain.Employee, domain.AssignmentIndex, error)

	mu     sync.Mutex
	loaded bool
	step   step
	roster []domain.Employee
	index  domain.AssignmentIndex
}

func newCatalog(load func(context.Context) ([]domain.Employee, domain.AssignmentIndex, error)) *catalog {
	return &catalog{load: load}
}

// Candidates returns the eligible employees for sel that match query.
func (c *catalog) Candidates(ctx context.Context, sel domain.SelectionContext, query string) ([]domain.Candidate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s := stepOf(sel); !c.loaded || c.step != s {
		roster, idx, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		c.roster, c.index, c.step, c.loaded = roster, idx, s, true
	}
	return domain.FilterCandidates(c.roster, c.index, query, sel), nil
}

// Invalidate drops the loaded index so the next call rebuilds it from the backend.
func (c *catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
}

// names maps every known employee id to its display name.
func (c *catalog) names() map[int64]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return namesOf(c.roster)
}

func namesOf(roster []domain.Employee) map[int64]string {
	names := make(map[int64]string, len(roster))
	for _, e := range roster {
		names[e.ID] = e.DisplayName()
	}
	return names
}
