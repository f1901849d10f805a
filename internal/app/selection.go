package app

import (
	"context"
	"errors"

	"go.trai.ch/hrdesk/internal/adapters/detector"
	"go.trai.ch/hrdesk/internal/adapters/tui"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/engine/session"
	"go.trai.ch/zerr"
)

// CandidatesOptions selects the picker whose candidates are listed.
type CandidatesOptions struct {
	Kind  domain.SelectionKind
	Query string
	// Manager is required for PickTeam and names the reporting manager the team is for.
	Manager string
}

// Candidates lists the employees eligible for a picker.
func (a *App) Candidates(ctx context.Context, opts CandidatesOptions) error {
	roster, idx, err := a.loadIndex(ctx)
	if err != nil {
		return err
	}

	sel := domain.SelectionContext{Kind: opts.Kind}
	if opts.Kind == domain.PickTeam {
		if opts.Manager == "" {
			return errors.Join(domain.ErrValidation, domain.ErrNoPrincipal)
		}
		manager, err := resolveEmployee(roster, opts.Manager)
		if err != nil {
			return zerr.Wrap(err, "resolve reporting manager")
		}
		sel.PrincipalID = &manager.ID
	}

	a.presenter.ShowCandidates(opts.Kind, domain.FilterCandidates(roster, idx, opts.Query, sel))
	return nil
}

// Assign makes manager a reporting manager with the given team members.
// The outcome of every member is reported even when some of them fail.
func (a *App) Assign(ctx context.Context, manager string, members []string) error {
	roster, idx, err := a.loadIndex(ctx)
	if err != nil {
		return err
	}

	principal, err := eligible(roster, idx, domain.SelectionContext{Kind: domain.PickManager}, manager)
	if err != nil {
		return zerr.Wrap(err, "resolve reporting manager")
	}

	sess := session.NewTeam(a.submitter)
	if err := sess.ChoosePrincipal(principal.ID); err != nil {
		return err
	}

	team := domain.SelectionContext{Kind: domain.PickTeam, PrincipalID: &principal.ID}
	for _, ref := range members {
		member, err := eligible(roster, idx, team, ref)
		if err != nil {
			return zerr.Wrap(err, "resolve team member")
		}
		if sess.Selected(member.ID) {
			continue
		}
		if _, err := sess.Toggle(member.ID); err != nil {
			return err
		}
	}

	return a.save(ctx, sess, namesOf(roster))
}

// Promote grants the HR role to the employee ref names.
func (a *App) Promote(ctx context.Context, ref string) error {
	roster, idx, err := a.loadIndex(ctx)
	if err != nil {
		return err
	}

	e, err := eligible(roster, idx, domain.SelectionContext{Kind: domain.PickHR}, ref)
	if err != nil {
		return zerr.Wrap(err, "resolve employee")
	}

	sess := session.NewPromotion(a.submitter)
	if err := sess.Choose(domain.CandidateOf(e)); err != nil {
		return err
	}
	return a.save(ctx, sess, namesOf(roster))
}

func (a *App) save(ctx context.Context, sess *session.Session, names map[int64]string) error {
	res, err := sess.Save(ctx)
	if res.Total() > 0 {
		a.presenter.ShowSubmitResult(res, names)
	}
	return err
}

// InteractiveOptions configures the interactive picker.
type InteractiveOptions struct {
	Kind domain.SelectionKind
	// Mode is the requested output mode: auto, tui or linear.
	Mode string
}

// Interactive opens the terminal picker for a team assignment or an HR promotion.
func (a *App) Interactive(ctx context.Context, opts InteractiveOptions) error {
	if detector.ResolveMode(a.detect(), opts.Mode) != detector.ModeTUI {
		return domain.ErrNotInteractive
	}

	var sess *session.Session
	switch opts.Kind {
	case domain.PickHR:
		sess = session.NewPromotion(a.submitter)
	case domain.PickTeam, domain.PickManager:
		sess = session.NewTeam(a.submitter)
	default:
		return zerr.With(zerr.Wrap(domain.ErrWrongSelectionKind, "open picker"), "kind", opts.Kind.String())
	}

	cat := newCatalog(a.loadIndex)
	res, err := tui.Run(ctx, cat, sess, a.teaOptions...)
	if res.Total() > 0 {
		a.presenter.ShowSubmitResult(res, cat.names())
	}
	return err
}
