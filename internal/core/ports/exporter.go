package ports

import "go.trai.ch/hrdesk/internal/core/domain"

// Exporter writes the roster and its liaisons to a file.
//
//go:generate mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type Exporter interface {
	Export(path string, roster []domain.Employee, liaisons []domain.Liaison) error
}
