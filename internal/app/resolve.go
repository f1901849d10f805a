package app

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxSuggestions = 3

// resolveEmployee finds the single employee a reference names. A reference is an id, a personal or
// corporate email, or a display name. Emails and names compare case-insensitively.
func resolveEmployee(roster []domain.Employee, ref string) (domain.Employee, error) {
	ref = strings.TrimSpace(ref)

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		for _, e := range roster {
			if e.ID == id {
				return e, nil
			}
		}
		return domain.Employee{}, zerr.With(zerr.Wrap(domain.ErrEmployeeNotFound, "no employee #"+ref), "ref", ref)
	}

	byEmail := strings.Contains(ref, "@")
	var matches []domain.Employee
	for _, e := range roster {
		if byEmail {
			if strings.EqualFold(e.Email, ref) || strings.EqualFold(e.CorporateEmail, ref) {
				matches = append(matches, e)
			}
			continue
		}
		if strings.EqualFold(e.DisplayName(), ref) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		err := zerr.With(zerr.Wrap(domain.ErrEmployeeNotFound, "no employee matches "+strconv.Quote(ref)), "ref", ref)
		if s := suggest(roster, ref); len(s) > 0 {
			err = zerr.With(err, "did_you_mean", strings.Join(s, ", "))
		}
		return domain.Employee{}, err
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = "#" + strconv.FormatInt(m.ID, 10)
		}
		err := zerr.Wrap(domain.ErrAmbiguousEmployee, strconv.Quote(ref)+" matches several employees")
		return domain.Employee{}, zerr.With(err, "matches", strings.Join(ids, ", "))
	}
}

// suggest returns the display names closest to ref.
func suggest(roster []domain.Employee, ref string) []string {
	names := make([]string, len(roster))
	for i, e := range roster {
		names[i] = e.DisplayName()
	}

	ranks := fuzzy.RankFindNormalizedFold(ref, names)
	sort.Stable(ranks)

	out := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.Target)
	}
	return out
}

// eligible resolves ref and checks it against the rules of sel.
func eligible(roster []domain.Employee, idx domain.AssignmentIndex, sel domain.SelectionContext, ref string) (domain.Employee, error) {
	e, err := resolveEmployee(roster, ref)
	if err != nil {
		return domain.Employee{}, err
	}
	if !domain.Eligible(e, idx, sel) {
		err := zerr.Wrap(domain.ErrNotEligible, e.DisplayName()+" cannot be picked as "+sel.Kind.String())
		return domain.Employee{}, zerr.With(zerr.With(err, "employee_id", e.ID), "reason", ineligibleReason(e, idx, sel))
	}
	return e, nil
}

func ineligibleReason(e domain.Employee, idx domain.AssignmentIndex, sel domain.SelectionContext) string {
	switch {
	case domain.Classify(e) == domain.ClassSystemAdmin:
		return "system administrator"
	case sel.Kind == domain.PickHR:
		return "already HR"
	case idx.ExistingManagers.Has(e.ID):
		return "already a reporting manager"
	case idx.AssignedEmployees.Has(e.ID):
		return "already assigned to a reporting manager"
	case sel.PrincipalID != nil && *sel.PrincipalID == e.ID:
		return "is the chosen reporting manager"
	default:
		return "excluded"
	}
}
