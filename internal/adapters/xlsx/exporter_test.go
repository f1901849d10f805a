package xlsx_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.trai.ch/hrdesk/internal/adapters/xlsx"
	"go.trai.ch/hrdesk/internal/core/domain"
)

func ptr(v int64) *int64 { return &v }

func TestExporter_Export(t *testing.T) {
	roster := []domain.Employee{
		{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", CorporateEmail: "ann@corp.example", Role: domain.RoleReportingManager, UserID: ptr(11)},
		{ID: 2, FirstName: "Bob", LastName: "Stone", Email: "bob@example.com"},
	}
	liaisons := []domain.Liaison{
		{EmployeeID: 1, Name: "Ann Lee", Email: "ann@example.com"},
		{EmployeeID: 2, Name: "Bob Stone", Email: "bob@example.com", ManagerID: ptr(1), ManagerName: "Ann Lee", HRID: ptr(9)},
	}
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	require.NoError(t, xlsx.NewExporter().Export(path, roster, liaisons))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{xlsx.EmployeesSheet, xlsx.LiaisonsSheet}, f.GetSheetList())

	employees, err := f.GetRows(xlsx.EmployeesSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "First name", "Last name", "Email", "Corporate email", "Role", "Account"},
		{"1", "Ann", "Lee", "ann@example.com", "ann@corp.example", "REPORTING_MANAGER", "yes"},
		{"2", "Bob", "Stone", "bob@example.com", "", "", "no"},
	}, employees)

	rows, err := f.GetRows(xlsx.LiaisonsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Employee", "Email", "Reporting manager", "HR"},
		{"1", "Ann Lee", "ann@example.com"},
		{"2", "Bob Stone", "bob@example.com", "Ann Lee", "#9"},
	}, rows)
}

func TestExporter_EmptyRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, xlsx.NewExporter().Export(path, nil, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(xlsx.EmployeesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExporter_Failures(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing directory", path: filepath.Join(t.TempDir(), "missing", "roster.xlsx")},
		{name: "unsupported extension", path: filepath.Join(t.TempDir(), "roster.csv")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := xlsx.NewExporter().Export(tt.path, nil, nil)
			require.ErrorIs(t, err, domain.ErrExportFailed)
		})
	}
}
