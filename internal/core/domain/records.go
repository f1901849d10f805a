package domain

// ManagerRecord is an employee currently acting as reporting manager, as listed by the backend.
type ManagerRecord struct {
	ID             int64  `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	CorporateEmail string `json:"corporateEmail,omitempty"`
}

// AssignmentRecord links an employee to its reporting manager and HR coordinator.
type AssignmentRecord struct {
	EmployeeID                     int64  `json:"employeeId"`
	ReportingManagerID             *int64 `json:"reportingManagerId"`
	ReportingManagerName           string `json:"reportingManagerName,omitempty"`
	ReportingManagerEmail          string `json:"reportingManagerEmail,omitempty"`
	ReportingManagerCorporateEmail string `json:"reportingManagerCorporateEmail,omitempty"`
	ReportingManagerRole           Role   `json:"reportingManagerRole,omitempty"`
	HRID                           *int64 `json:"hrId"`
	HRName                         string `json:"hrName,omitempty"`
	HRRole                         Role   `json:"hrRole,omitempty"`
}

// UserRecord is a login account.
type UserRecord struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role"`
}

// Assignment is the persistence payload placing one employee under a reporting manager.
type Assignment struct {
	EmployeeID         int64  `json:"employeeId"`
	ReportingManagerID int64  `json:"reportingManagerId"`
	HRID               *int64 `json:"hrId"`
}

// TeamMember is one report of a manager.
type TeamMember struct {
	ID             int64  `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	CorporateEmail string `json:"corporateEmail,omitempty"`
}

// ManagerDetails is a reporting manager together with its team.
type ManagerDetails struct {
	ID             int64        `json:"id"`
	FullName       string       `json:"fullName"`
	Email          string       `json:"email"`
	CorporateEmail string       `json:"corporateEmail,omitempty"`
	Team           []TeamMember `json:"team"`
}
