// Package xlsx writes the roster and its liaisons to an Excel workbook.
package xlsx

import (
	"errors"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// EmployeesSheet lists every employee of the roster.
	EmployeesSheet = "Employees"
	// LiaisonsSheet lists the reporting manager and HR coordinator of each employee.
	LiaisonsSheet = "Liaisons"

	defaultSheet = "Sheet1"
	columnWidth  = 24
)

var (
	employeeHeader = []any{"ID", "First name", "Last name", "Email", "Corporate email", "Role", "Account"}
	liaisonHeader  = []any{"ID", "Employee", "Email", "Reporting manager", "HR"}
)

// Exporter writes workbooks with excelize.
type Exporter struct{}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the roster and liaisons to path. The extension must be one excelize accepts, such as .xlsx.
func (e *Exporter) Export(path string, roster []domain.Employee, liaisons []domain.Liaison) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = zerr.With(errors.Join(domain.ErrExportFailed, closeErr), "path", path)
		}
	}()

	if err := f.SetSheetName(defaultSheet, EmployeesSheet); err != nil {
		return zerr.With(errors.Join(domain.ErrExportFailed, err), "sheet", EmployeesSheet)
	}
	if _, err := f.NewSheet(LiaisonsSheet); err != nil {
		return zerr.With(errors.Join(domain.ErrExportFailed, err), "sheet", LiaisonsSheet)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Join(domain.ErrExportFailed, err)
	}

	employees := make([][]any, 0, len(roster))
	for _, emp := range roster {
		employees = append(employees, []any{
			emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.CorporateEmail, string(emp.Role), yesNo(emp.HasAccount()),
		})
	}
	if err := writeSheet(f, EmployeesSheet, employeeHeader, employees, header); err != nil {
		return err
	}

	rows := make([][]any, 0, len(liaisons))
	for _, l := range liaisons {
		rows = append(rows, []any{l.EmployeeID, l.Name, l.Email, personLabel(l.ManagerName, l.ManagerID), personLabel(l.HRName, l.HRID)})
	}
	if err := writeSheet(f, LiaisonsSheet, liaisonHeader, rows, header); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return zerr.With(errors.Join(domain.ErrExportFailed, err), "path", path)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	fail := func(err error) error {
		return zerr.With(errors.Join(domain.ErrExportFailed, err), "sheet", sheet)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fail(err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fail(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fail(err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fail(err)
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return fail(err)
	}
	if err := f.SetColWidth(sheet, "B", last, columnWidth); err != nil {
		return fail(err)
	}
	return nil
}

// personLabel renders a liaison as its name, falling back to the id when the name is unknown.
func personLabel(name string, id *int64) string {
	switch {
	case name != "":
		return name
	case id != nil:
		return "#" + strconv.FormatInt(*id, 10)
	default:
		return ""
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
