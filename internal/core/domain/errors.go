package domain

import "go.trai.ch/zerr"

var (
	// ErrValidation is returned when a selection does not meet the preconditions for saving.
	ErrValidation = zerr.New("validation failed")

	// ErrNoPrincipal is returned when a team operation is attempted before a reporting manager is chosen.
	ErrNoPrincipal = zerr.New("please select a reporting manager")

	// ErrNoDependents is returned when a team assignment is saved without any team members.
	ErrNoDependents = zerr.New("please select at least one team member")

	// ErrNoCandidate is returned when an HR promotion is saved without a chosen employee.
	ErrNoCandidate = zerr.New("please select an employee")

	// ErrNoUserAccount is returned when the employee chosen for HR promotion has no login account.
	ErrNoUserAccount = zerr.New("selected employee does not have a user account")

	// ErrWrongSelectionKind is returned when an operation does not apply to the session's selection kind.
	ErrWrongSelectionKind = zerr.New("operation not supported for this selection")

	// ErrSaveInProgress is returned when a session is modified or saved while a save is in flight.
	ErrSaveInProgress = zerr.New("save already in progress")

	// ErrSubmitIncomplete is returned when at least one persistence request of a save failed.
	ErrSubmitIncomplete = zerr.New("some assignments could not be saved")

	// ErrNetwork is returned when the backend cannot be reached.
	ErrNetwork = zerr.New("backend unreachable")

	// ErrBackendRejected is returned when the backend answers with a non-success status.
	ErrBackendRejected = zerr.New("backend rejected request")

	// ErrDecodeFailed is returned when a backend response body cannot be decoded.
	ErrDecodeFailed = zerr.New("failed to decode backend response")

	// ErrRosterUnavailable is returned when the employee roster has never been loaded.
	ErrRosterUnavailable = zerr.New("employee roster unavailable")

	// ErrEmployeeNotFound is returned when an employee reference matches nobody in the roster.
	ErrEmployeeNotFound = zerr.New("employee not found")

	// ErrAmbiguousEmployee is returned when an employee reference matches more than one employee.
	ErrAmbiguousEmployee = zerr.New("employee reference is ambiguous")

	// ErrNotEligible is returned when an employee exists but is excluded from the requested selection.
	ErrNotEligible = zerr.New("employee is not eligible for this selection")

	// ErrInvalidEmployee is returned when a new employee payload fails validation.
	ErrInvalidEmployee = zerr.New("invalid employee details")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be parsed.
	ErrConfigEnvFailed = zerr.New("failed to parse environment overrides")

	// ErrConfigInvalid is returned when the resolved settings are unusable.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrSnapshotReadFailed is returned when the roster snapshot cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read roster snapshot")

	// ErrSnapshotCorrupt is returned when the roster snapshot fails its checksum or cannot be decoded.
	ErrSnapshotCorrupt = zerr.New("roster snapshot is corrupt")

	// ErrSnapshotWriteFailed is returned when the roster snapshot cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write roster snapshot")

	// ErrNotInteractive is returned when the interactive picker is requested without a terminal.
	ErrNotInteractive = zerr.New("interactive mode requires a terminal")

	// ErrExportFailed is returned when the spreadsheet export cannot be written.
	ErrExportFailed = zerr.New("failed to export workbook")
)
