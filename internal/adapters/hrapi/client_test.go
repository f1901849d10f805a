package hrapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hrdesk/internal/adapters/hrapi"
	"go.trai.ch/hrdesk/internal/core/domain"
)

func newClient(t *testing.T, handler http.Handler, mutate ...func(*domain.Settings)) *hrapi.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	settings := domain.DefaultSettings()
	settings.BaseURL = srv.URL + "/api"
	settings.RetryAttempts = 3
	for _, m := range mutate {
		m(&settings)
	}

	client, err := hrapi.New(settings, hrapi.WithRetryDelay(time.Millisecond))
	require.NoError(t, err)
	return client
}

func int64p(v int64) *int64 { return &v }

func TestClient_ListEmployees(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "envelope", body: `{"success":true,"data":[{"id":1,"firstName":"Ann","lastName":"Lee","email":"ann@x.io","role":"HR","userId":7}]}`},
		{name: "bare array", body: `[{"id":1,"firstName":"Ann","lastName":"Lee","email":"ann@x.io","role":"HR","userId":7}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/employees", func(w http.ResponseWriter, r *http.Request) {
				assert.NotEmpty(t, r.Header.Get(hrapi.RequestIDHeader))
				_, _ = io.WriteString(w, tt.body)
			})

			got, err := newClient(t, mux).ListEmployees(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []domain.Employee{{
				ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@x.io", Role: domain.RoleHR, UserID: int64p(7),
			}}, got)
		})
	}
}

func TestClient_ListEmployees_EmptyData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/employees", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":null}`)
	})

	got, err := newClient(t, mux).ListEmployees(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClient_Loads(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/reporting-managers", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"id":3,"fullName":"Cat Moss","email":"cat@x.io"}]`)
	})
	mux.HandleFunc("GET /api/reporting-managers/assignments", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"employeeId":5,"reportingManagerId":3,"reportingManagerName":"Cat Moss","hrId":null}]`)
	})
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"id":7,"username":"ann","role":"HR"}]`)
	})
	mux.HandleFunc("GET /api/reporting-managers/3", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":3,"fullName":"Cat Moss","email":"cat@x.io","team":[{"id":5,"fullName":"Dan Poe","email":"dan@x.io"}]}`)
	})

	c := newClient(t, mux)
	ctx := context.Background()

	managers, err := c.ListManagers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ManagerRecord{{ID: 3, FullName: "Cat Moss", Email: "cat@x.io"}}, managers)

	assignments, err := c.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, int64(5), assignments[0].EmployeeID)
	assert.Equal(t, int64p(3), assignments[0].ReportingManagerID)
	assert.Nil(t, assignments[0].HRID)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.UserRecord{{ID: 7, Username: "ann", Role: domain.RoleHR}}, users)

	details, err := c.ManagerDetails(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Cat Moss", details.FullName)
	assert.Equal(t, []domain.TeamMember{{ID: 5, FullName: "Dan Poe", Email: "dan@x.io"}}, details.Team)
}

func TestClient_AssignManager(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/reporting-managers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := newClient(t, mux).AssignManager(context.Background(), domain.Assignment{
		EmployeeID: 5, ReportingManagerID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"employeeId": float64(5), "reportingManagerId": float64(3), "hrId": nil}, got)
}

func TestClient_WritesAreNeverRetried(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/reporting-managers/promote-hr/9", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := newClient(t, mux).PromoteToHR(context.Background(), 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendRejected)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GetRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	})

	users, err := newClient(t, mux).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GetGivesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := newClient(t, mux, func(s *domain.Settings) { s.RetryAttempts = 2 }).ListUsers(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_GetDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"message":"Access denied"}`)
	})

	_, err := newClient(t, mux).ListUsers(context.Background())
	require.Error(t, err)

	var statusErr *hrapi.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, "Access denied", statusErr.Message)
	assert.Equal(t, "GET /users: 403 Forbidden: Access denied", statusErr.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RejectionMessageFromPlainText(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/reporting-managers/remove-member/5", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "Error removing team member: not found\nStack:\n at Foo")
	})

	err := newClient(t, mux).RemoveTeamMember(context.Background(), 5)

	var statusErr *hrapi.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "Error removing team member: not found", statusErr.Message)
}

func TestClient_RemoveManager(t *testing.T) {
	var called atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/reporting-managers/3", func(w http.ResponseWriter, _ *http.Request) {
		called.Store(true)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, newClient(t, mux).RemoveManager(context.Background(), 3))
	assert.True(t, called.Load())
}

func TestClient_NetworkError(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.BaseURL = "http://127.0.0.1:1/api"
	settings.RetryAttempts = 1

	client, err := hrapi.New(settings)
	require.NoError(t, err)

	_, err = client.ListEmployees(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)

	var netErr *hrapi.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.MethodGet, netErr.Method)
	assert.Contains(t, err.Error(), "backend unreachable")
	assert.NotContains(t, err.Error(), "\n")
}

func TestClient_LongRejectionKeepsWholeCharacters(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, strings.Repeat("a", 299)+"éé")
	})

	_, err := newClient(t, mux).ListUsers(context.Background())

	var statusErr *hrapi.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.True(t, utf8.ValidString(statusErr.Message))
	assert.Equal(t, strings.Repeat("a", 299)+"…", statusErr.Message)
}

func TestClient_DecodeFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/employees", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":"nope"}`)
	})

	_, err := newClient(t, mux).ListEmployees(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecodeFailed)
}

func TestClient_SessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("JSESSIONID")
		if err != nil || cookie.Value != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	})

	c := newClient(t, mux, func(s *domain.Settings) { s.SessionCookie = "s3cret" })
	_, err := c.ListUsers(context.Background())
	require.NoError(t, err)
}

func TestClient_CreateEmployee(t *testing.T) {
	var payload map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/employees", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"message":"Employee created successfully","data":{"id":11,"firstName":"Eve","lastName":"Fox","email":"eve@x.io","userId":20}}`)
	})

	created, err := newClient(t, mux).CreateEmployee(context.Background(), domain.NewEmployee{
		FirstName:      "Eve",
		LastName:       "Fox",
		Email:          "eve@x.io",
		CompanyID:      "OF-11",
		CorporateEmail: "eve@oryfolks.com",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), created.ID)
	assert.True(t, created.HasAccount())
	assert.Equal(t, true, payload["createAccount"])
	assert.Equal(t, "OF-11", payload["oryfolksId"])
	assert.Equal(t, "eve@oryfolks.com", payload["corporateEmail"])
}

func TestClient_CancelledContext(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(t, mux).ListUsers(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
