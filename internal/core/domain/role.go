package domain

// Role is the role tag carried by employee and user records.
type Role string

const (
	// RoleAdmin marks the system administrator account.
	RoleAdmin Role = "ADMIN"
	// RoleHR marks an HR coordinator.
	RoleHR Role = "HR"
	// RoleReportingManager marks an employee acting as a reporting manager.
	RoleReportingManager Role = "REPORTING_MANAGER"
	// RoleNone is the unset tag of a regular employee.
	RoleNone Role = ""
)

// RoleClass is the classification every selection rule is expressed against.
type RoleClass uint8

const (
	// ClassRegular is any employee without a privileged role.
	ClassRegular RoleClass = iota
	// ClassSystemAdmin is the administrator account, never selectable.
	ClassSystemAdmin
	// ClassHR is an HR coordinator.
	ClassHR
	// ClassReportingManager is a reporting manager.
	ClassReportingManager
)

// String returns the human-readable name of the class.
func (c RoleClass) String() string {
	switch c {
	case ClassSystemAdmin:
		return "system admin"
	case ClassHR:
		return "hr"
	case ClassReportingManager:
		return "reporting manager"
	default:
		return "regular"
	}
}

const (
	systemAdminFirstName = "System"
	systemAdminLastName  = "Admin"
)

// ClassifyRole maps a role tag to its class. Tags are compared exactly.
func ClassifyRole(role Role) RoleClass {
	switch role {
	case RoleAdmin:
		return ClassSystemAdmin
	case RoleHR:
		return ClassHR
	case RoleReportingManager:
		return ClassReportingManager
	default:
		return ClassRegular
	}
}

// Classify returns the class of an employee. The seeded administrator is recognised either by
// its role tag or by the exact, case-sensitive name "System Admin".
func Classify(e Employee) RoleClass {
	if e.FirstName == systemAdminFirstName && e.LastName == systemAdminLastName {
		return ClassSystemAdmin
	}
	return ClassifyRole(e.Role)
}
