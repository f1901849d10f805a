package app

import (
	"context"

	"go.trai.ch/hrdesk/internal/adapters/detector"
	"go.trai.ch/hrdesk/internal/core/domain"
)

// ResolveEmployee exposes reference resolution for tests.
func ResolveEmployee(roster []domain.Employee, ref string) (domain.Employee, error) {
	return resolveEmployee(roster, ref)
}

// SetDetector replaces terminal detection for tests.
func (a *App) SetDetector(detect func() detector.OutputMode) {
	a.detect = detect
}

// Catalog is the picker source Interactive hands to the TUI.
type Catalog = catalog

// NewCatalog creates a Catalog over load.
func NewCatalog(load func(context.Context) ([]domain.Employee, domain.AssignmentIndex, error)) *Catalog {
	return newCatalog(load)
}
