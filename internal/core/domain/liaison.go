package domain

// Liaison is the reporting manager and HR coordinator shown against an employee.
type Liaison struct {
	EmployeeID  int64  `json:"employeeId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ManagerID   *int64 `json:"reportingManagerId,omitempty"`
	ManagerName string `json:"reportingManagerName,omitempty"`
	HRID        *int64 `json:"hrId,omitempty"`
	HRName      string `json:"hrName,omitempty"`
}

// BuildLiaisons joins the roster with assignment records. System administrators are omitted and
// employees without an assignment get an empty liaison. Output follows roster order.
func BuildLiaisons(roster []Employee, assignments []AssignmentRecord) []Liaison {
	byEmployee := make(map[int64]AssignmentRecord, len(assignments))
	for _, a := range assignments {
		byEmployee[a.EmployeeID] = a
	}

	out := make([]Liaison, 0, len(roster))
	for _, e := range roster {
		if Classify(e) == ClassSystemAdmin {
			continue
		}
		l := Liaison{
			EmployeeID: e.ID,
			Name:       e.DisplayName(),
			Email:      e.Email,
		}
		if a, ok := byEmployee[e.ID]; ok {
			l.ManagerID = a.ReportingManagerID
			l.ManagerName = a.ReportingManagerName
			l.HRID = a.HRID
			l.HRName = a.HRName
		}
		out = append(out, l)
	}
	return out
}
