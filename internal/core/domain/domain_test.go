package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hrdesk/internal/core/domain"
)

func ptr(v int64) *int64 {
	return &v
}

func sampleRoster() []domain.Employee {
	return []domain.Employee{
		{ID: 1, FirstName: "Ann", Email: "ann@example.com", UserID: ptr(101)},
		{ID: 2, FirstName: "Bob", Email: "bob@example.com", Role: domain.RoleHR, UserID: ptr(2)},
		{ID: 3, FirstName: "System", LastName: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin},
	}
}

func candidateIDs(cs []domain.Candidate) []int64 {
	ids := make([]int64, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		employee domain.Employee
		want     domain.RoleClass
	}{
		{
			name:     "admin role",
			employee: domain.Employee{FirstName: "Root", Role: domain.RoleAdmin},
			want:     domain.ClassSystemAdmin,
		},
		{
			name:     "admin by name without role",
			employee: domain.Employee{FirstName: "System", LastName: "Admin"},
			want:     domain.ClassSystemAdmin,
		},
		{
			name:     "name match is case sensitive",
			employee: domain.Employee{FirstName: "system", LastName: "admin"},
			want:     domain.ClassRegular,
		},
		{
			name:     "hr",
			employee: domain.Employee{FirstName: "Bob", Role: domain.RoleHR},
			want:     domain.ClassHR,
		},
		{
			name:     "reporting manager",
			employee: domain.Employee{FirstName: "Cat", Role: domain.RoleReportingManager},
			want:     domain.ClassReportingManager,
		},
		{
			name:     "unknown role is regular",
			employee: domain.Employee{FirstName: "Dan", Role: "hr"},
			want:     domain.ClassRegular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Classify(tt.employee))
		})
	}
}

func TestEmployee_DisplayName(t *testing.T) {
	assert.Equal(t, "Ann Lee", domain.Employee{FirstName: "Ann", LastName: "Lee"}.DisplayName())
	assert.Equal(t, "Ann", domain.Employee{FirstName: "Ann"}.DisplayName())
	assert.Equal(t, "Lee", domain.Employee{LastName: "Lee"}.DisplayName())
}

func TestBuildIndex(t *testing.T) {
	managers := []domain.ManagerRecord{{ID: 10}, {ID: 11}}
	assignments := []domain.AssignmentRecord{
		{EmployeeID: 1, ReportingManagerID: ptr(10)},
		{EmployeeID: 2, ReportingManagerID: nil, HRID: ptr(7)},
		{EmployeeID: 4, ReportingManagerID: ptr(11)},
	}
	users := []domain.UserRecord{
		{ID: 5, Role: domain.RoleHR},
		{ID: 6, Role: domain.RoleAdmin},
		{ID: 7, Role: domain.RoleHR},
	}

	idx := domain.BuildIndex(managers, assignments, users)

	assert.Equal(t, []int64{10, 11}, idx.ExistingManagers.Sorted())
	assert.Equal(t, []int64{1, 4}, idx.AssignedEmployees.Sorted())
	assert.Equal(t, []int64{5, 7}, idx.HRUserIDs.Sorted())
}

func TestBuildIndex_Empty(t *testing.T) {
	idx := domain.BuildIndex(nil, nil, nil)

	assert.Equal(t, 0, idx.ExistingManagers.Len())
	assert.Equal(t, 0, idx.AssignedEmployees.Len())
	assert.Equal(t, 0, idx.HRUserIDs.Len())
	assert.False(t, idx.HRUserIDs.Has(1))
}

func TestFilterCandidates_TeamScenario(t *testing.T) {
	idx := domain.BuildIndex(nil, nil, nil)

	got := domain.FilterCandidates(sampleRoster(), idx, "", domain.SelectionContext{Kind: domain.PickTeam})

	require.Len(t, got, 2)
	assert.Equal(t, "Ann", got[0].Name)
	assert.Equal(t, "Bob", got[1].Name)
}

func TestFilterCandidates_HRScenario(t *testing.T) {
	idx := domain.AssignmentIndex{HRUserIDs: domain.NewIDSet(2)}

	got := domain.FilterCandidates(sampleRoster(), idx, "", domain.SelectionContext{Kind: domain.PickHR})

	assert.Equal(t, []int64{1}, candidateIDs(got))
}

func TestFilterCandidates_HRExcludesByUserID(t *testing.T) {
	roster := []domain.Employee{
		{ID: 1, FirstName: "Ann", UserID: ptr(50)},
		{ID: 2, FirstName: "Eve", UserID: ptr(51)},
		{ID: 3, FirstName: "Gus"},
	}
	idx := domain.AssignmentIndex{HRUserIDs: domain.NewIDSet(51)}

	got := domain.FilterCandidates(roster, idx, "", domain.SelectionContext{Kind: domain.PickHR})

	assert.Equal(t, []int64{1, 3}, candidateIDs(got))
}

func TestFilterCandidates_TeamExclusions(t *testing.T) {
	roster := []domain.Employee{
		{ID: 1, FirstName: "Ann"},
		{ID: 2, FirstName: "Bob"},
		{ID: 3, FirstName: "Cat"},
		{ID: 4, FirstName: "Dan"},
		{ID: 5, FirstName: "Eve"},
	}
	idx := domain.AssignmentIndex{
		ExistingManagers:  domain.NewIDSet(2),
		AssignedEmployees: domain.NewIDSet(3),
	}

	got := domain.FilterCandidates(roster, idx, "", domain.SelectionContext{Kind: domain.PickTeam, PrincipalID: ptr(4)})

	assert.Equal(t, []int64{1, 5}, candidateIDs(got))
}

func TestFilterCandidates_ManagerExcludesExistingManagers(t *testing.T) {
	roster := []domain.Employee{
		{ID: 1, FirstName: "Ann"},
		{ID: 2, FirstName: "Bob"},
		{ID: 3, FirstName: "Cat"},
	}
	idx := domain.AssignmentIndex{
		ExistingManagers:  domain.NewIDSet(2),
		AssignedEmployees: domain.NewIDSet(3),
	}

	got := domain.FilterCandidates(roster, idx, "", domain.SelectionContext{Kind: domain.PickManager})

	assert.Equal(t, []int64{1, 3}, candidateIDs(got))
}

func TestFilterCandidates_Query(t *testing.T) {
	roster := []domain.Employee{
		{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@corp.io"},
		{ID: 2, FirstName: "Bob", LastName: "Stone", Email: "bstone@mail.io"},
		{ID: 3, FirstName: "Cathy", LastName: "Annis", Email: "cathy@mail.io"},
	}
	idx := domain.BuildIndex(nil, nil, nil)
	sel := domain.SelectionContext{Kind: domain.PickManager}

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "empty matches all", query: "", want: []int64{1, 2, 3}},
		{name: "case insensitive name", query: "ANN", want: []int64{1, 3}},
		{name: "full name across space", query: "ann lee", want: []int64{1}},
		{name: "email", query: "bstone@", want: []int64{2}},
		{name: "no match", query: "zzz", want: []int64{}},
		{name: "query is not trimmed", query: " lee", want: []int64{1}},
		{name: "leading space without match", query: " ann", want: []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.FilterCandidates(roster, idx, tt.query, sel)
			assert.Equal(t, tt.want, candidateIDs(got))
		})
	}
}

func TestFilterCandidates_Properties(t *testing.T) {
	roster := []domain.Employee{
		{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@corp.io", UserID: ptr(1)},
		{ID: 2, FirstName: "Bob", Email: "bob@corp.io", Role: domain.RoleHR, UserID: ptr(2)},
		{ID: 3, FirstName: "System", LastName: "Admin", Email: "root@corp.io"},
		{ID: 4, FirstName: "Root", Email: "sa@corp.io", Role: domain.RoleAdmin},
		{ID: 5, FirstName: "Cat", Email: "cat@corp.io", Role: domain.RoleReportingManager, UserID: ptr(5)},
		{ID: 6, FirstName: "Dan", LastName: "Admin", Email: "dan@corp.io", UserID: ptr(6)},
	}
	indexes := []domain.AssignmentIndex{
		domain.BuildIndex(nil, nil, nil),
		{
			ExistingManagers:  domain.NewIDSet(5),
			AssignedEmployees: domain.NewIDSet(1),
			HRUserIDs:         domain.NewIDSet(6),
		},
	}
	contexts := []domain.SelectionContext{
		{Kind: domain.PickTeam},
		{Kind: domain.PickTeam, PrincipalID: ptr(6)},
		{Kind: domain.PickManager},
		{Kind: domain.PickHR},
	}
	queries := []string{"a", "ADMIN", "corp", "system admin", "o", "x"}

	for _, idx := range indexes {
		for _, sel := range contexts {
			all := domain.FilterCandidates(roster, idx, "", sel)
			allIDs := domain.NewIDSet(candidateIDs(all)...)

			assert.False(t, allIDs.Has(3), "name-matched admin leaked into %s", sel.Kind)
			assert.False(t, allIDs.Has(4), "role-tagged admin leaked into %s", sel.Kind)

			for _, q := range queries {
				for _, c := range domain.FilterCandidates(roster, idx, q, sel) {
					assert.True(t, allIDs.Has(c.ID), "query %q in %s returned %d outside the unfiltered set", q, sel.Kind, c.ID)
				}
			}
		}
	}
}

func TestFilterCandidates_PreservesRosterOrder(t *testing.T) {
	roster := []domain.Employee{
		{ID: 9, FirstName: "Zed"},
		{ID: 2, FirstName: "Amy"},
		{ID: 5, FirstName: "Max"},
	}

	got := domain.FilterCandidates(roster, domain.BuildIndex(nil, nil, nil), "", domain.SelectionContext{Kind: domain.PickTeam})

	assert.Equal(t, []int64{9, 2, 5}, candidateIDs(got))
}

func TestBuildLiaisons(t *testing.T) {
	roster := sampleRoster()
	assignments := []domain.AssignmentRecord{
		{EmployeeID: 1, ReportingManagerID: ptr(10), ReportingManagerName: "Mia Ray", HRID: ptr(2), HRName: "Bob"},
	}

	got := domain.BuildLiaisons(roster, assignments)

	require.Len(t, got, 2)
	assert.Equal(t, "Ann", got[0].Name)
	assert.Equal(t, "Mia Ray", got[0].ManagerName)
	assert.Equal(t, "Bob", got[0].HRName)
	assert.Equal(t, int64(2), got[1].EmployeeID)
	assert.Nil(t, got[1].ManagerID)
	assert.Empty(t, got[1].HRName)
}

func TestSubmitResult(t *testing.T) {
	res := domain.SubmitResult{Succeeded: []int64{1, 3}}
	assert.True(t, res.OK())
	assert.Equal(t, 2, res.Total())

	res.Failed = []domain.Failure{{ID: 2, Reason: "boom"}}
	assert.False(t, res.OK())
	assert.Equal(t, 3, res.Total())
	assert.Equal(t, []int64{2}, res.FailedIDs())
}

func TestNewEmployee_CompleteCorporateEmail(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		domain string
		want   string
	}{
		{name: "bare mailbox", input: "ann.lee", domain: "oryfolks.com", want: "ann.lee@oryfolks.com"},
		{name: "already qualified", input: "ann@other.io", domain: "oryfolks.com", want: "ann@other.io"},
		{name: "empty mailbox", input: "", domain: "oryfolks.com", want: ""},
		{name: "no domain configured", input: "ann", domain: "", want: "ann"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := domain.NewEmployee{CorporateEmail: tt.input}
			n.CompleteCorporateEmail(tt.domain)
			assert.Equal(t, tt.want, n.CorporateEmail)
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Equal(t, domain.DefaultBaseURL, s.BaseURL)
	assert.Equal(t, domain.DefaultCacheTTL, s.CacheTTL)
	assert.Equal(t, domain.DefaultSubmitConcurrency, s.SubmitConcurrency)
	assert.Equal(t, "JSESSIONID", s.SessionCookieName)
}
