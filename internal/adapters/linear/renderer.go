// Package linear provides a synchronous, line-oriented presenter for terminals and CI logs.
package linear

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/ui/output"
	"go.trai.ch/hrdesk/internal/ui/style"
)

const (
	placeholder = "-"
	padding     = 2
)

// Renderer implements ports.Presenter.
// Results go to stdout; backend call traces go to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output

	mu    sync.Mutex
	calls map[string]callState // spanID -> call
}

type callState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a Renderer. Nil writers default to stdout and stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.NewWithProfile(stdout, output.ColorProfileANSI),
		errOut: output.NewWithProfile(stderr, output.ColorProfileANSI),
		calls:  make(map[string]callState),
	}
}

// OnCallStart prints the call being issued.
func (r *Renderer) OnCallStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls[spanID] = callState{name: name, startTime: startTime}

	arrow := r.errOut.String(style.Arrow).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", arrow, name)
}

// OnCallComplete prints the outcome and duration of a call.
func (r *Renderer) OnCallComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call, ok := r.calls[spanID]
	if !ok {
		return
	}
	delete(r.calls, spanID)

	duration := endTime.Sub(call.startTime).Round(time.Millisecond)
	if err != nil {
		symbol := r.errOut.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s failed after %v: %v\n", symbol, call.name, duration, err)
		return
	}

	symbol := r.errOut.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s (%v)\n", symbol, call.name, duration)
}

// ShowCandidates prints the eligible employees of a picker.
func (r *Renderer) ShowCandidates(kind domain.SelectionKind, candidates []domain.Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(candidates) == 0 {
		_, _ = fmt.Fprintf(r.stdout, "No eligible employees for %s.\n", kind)
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "%s for %s:\n", plural(len(candidates), "candidate"), kind)

	rows := make([][]string, 0, len(candidates)+1)
	rows = append(rows, []string{"ID", "NAME", "EMAIL", "ACCOUNT"})
	for _, c := range candidates {
		account := "no"
		if c.UserID != nil {
			account = "yes"
		}
		rows = append(rows, []string{formatID(c.ID), orPlaceholder(c.Name), orPlaceholder(c.Email), account})
	}
	r.writeTableLocked(rows)
}

// ShowSubmitResult prints one line per dependent followed by a summary.
func (r *Renderer) ShowSubmitResult(result domain.SubmitResult, names map[int64]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	check := r.out.String(style.Check).Foreground(termenv.ANSIGreen).String()
	cross := r.out.String(style.Cross).Foreground(termenv.ANSIRed).String()

	for _, id := range result.Succeeded {
		_, _ = fmt.Fprintf(r.stdout, "%s %s\n", check, label(id, names))
	}
	for _, f := range result.Failed {
		_, _ = fmt.Fprintf(r.stdout, "%s %s: %s\n", cross, label(f.ID, names), f.Reason)
	}
	_, _ = fmt.Fprintf(r.stdout, "%d of %d saved\n", len(result.Succeeded), result.Total())
}

// ShowLiaisons prints each employee's reporting manager and HR coordinator.
func (r *Renderer) ShowLiaisons(liaisons []domain.Liaison) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(liaisons) == 0 {
		_, _ = fmt.Fprintln(r.stdout, "No employees.")
		return
	}

	rows := make([][]string, 0, len(liaisons)+1)
	rows = append(rows, []string{"ID", "EMPLOYEE", "EMAIL", "MANAGER", "HR"})
	for _, l := range liaisons {
		rows = append(rows, []string{
			formatID(l.EmployeeID),
			orPlaceholder(l.Name),
			orPlaceholder(l.Email),
			orPlaceholder(l.ManagerName),
			orPlaceholder(l.HRName),
		})
	}
	r.writeTableLocked(rows)
}

// ShowManagers prints the reporting managers.
func (r *Renderer) ShowManagers(managers []domain.ManagerRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(managers) == 0 {
		_, _ = fmt.Fprintln(r.stdout, "No reporting managers.")
		return
	}

	rows := make([][]string, 0, len(managers)+1)
	rows = append(rows, []string{"ID", "NAME", "EMAIL"})
	for _, m := range managers {
		rows = append(rows, []string{formatID(m.ID), orPlaceholder(m.FullName), orPlaceholder(m.Email)})
	}
	r.writeTableLocked(rows)
}

// ShowManagerDetails prints one manager and its team.
func (r *Renderer) ShowManagerDetails(details domain.ManagerDetails) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := r.out.String(orPlaceholder(details.FullName)).Bold().String()
	_, _ = fmt.Fprintf(r.stdout, "%s #%d\n", name, details.ID)
	_, _ = fmt.Fprintf(r.stdout, "Email: %s\n", orPlaceholder(details.Email))
	if details.CorporateEmail != "" {
		_, _ = fmt.Fprintf(r.stdout, "Corporate email: %s\n", details.CorporateEmail)
	}

	if len(details.Team) == 0 {
		_, _ = fmt.Fprintln(r.stdout, "No team members.")
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "Team (%d):\n", len(details.Team))
	rows := make([][]string, 0, len(details.Team)+1)
	rows = append(rows, []string{"ID", "NAME", "EMAIL"})
	for _, m := range details.Team {
		rows = append(rows, []string{formatID(m.ID), orPlaceholder(m.FullName), orPlaceholder(m.Email)})
	}
	r.writeTableLocked(rows)
}

// writeTableLocked aligns rows into columns. The first row is the header.
// Must be called with r.mu held.
func (r *Renderer) writeTableLocked(rows [][]string) {
	tw := tabwriter.NewWriter(r.stdout, 0, 0, padding, ' ', 0)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				_, _ = io.WriteString(tw, "\t")
			}
			_, _ = io.WriteString(tw, cell)
		}
		_, _ = io.WriteString(tw, "\n")
	}
	_ = tw.Flush()
}

func label(id int64, names map[int64]string) string {
	if name := names[id]; name != "" {
		return fmt.Sprintf("%s #%d", name, id)
	}
	return fmt.Sprintf("employee #%d", id)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
