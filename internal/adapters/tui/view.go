package tui

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/ui/style"
)

// View renders the picker.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(m.title()) + "\n\n")

	if m.Phase() == PhaseResult {
		m.writeResult(&s)
		return s.String()
	}

	s.WriteString(promptStyle.Render(m.prompt()) + "\n")
	s.WriteString(queryStyle.Render(style.Pointer+" "+m.Query) + "\n\n")
	m.writeList(&s)

	if m.Err != nil {
		s.WriteString("\n" + errorStyle.Render(style.Cross+" "+m.Err.Error()) + "\n")
	}
	s.WriteString("\n" + mutedStyle.Render(m.help()) + "\n")
	return s.String()
}

func (m *Model) title() string {
	if m.session.Kind() == domain.PickHR {
		return "hrdesk · promote to HR"
	}
	return "hrdesk · assign team"
}

func (m *Model) prompt() string {
	switch m.Phase() {
	case PhaseManager:
		return "Choose a reporting manager"
	case PhaseTeam:
		name := "manager"
		if p := m.session.Principal(); p != nil {
			name = m.nameOf(*p)
		}
		return fmt.Sprintf("Team for %s (%d selected)", name, len(m.session.Dependents()))
	default:
		return "Choose an employee to promote"
	}
}

func (m *Model) help() string {
	switch {
	case m.Saving:
		return "saving..."
	case m.Phase() == PhaseTeam:
		return "enter toggle · ctrl+s save · esc back · ctrl+c quit"
	case m.Phase() == PhaseHR:
		return "enter promote · esc quit"
	default:
		return "enter choose · esc quit"
	}
}

func (m *Model) writeList(s *strings.Builder) {
	if m.Loading && len(m.Candidates) == 0 {
		s.WriteString(mutedStyle.Render("  loading...") + "\n")
		return
	}
	if len(m.Candidates) == 0 {
		s.WriteString(mutedStyle.Render("  no eligible employees") + "\n")
		return
	}

	end := len(m.Candidates)
	if m.ListHeight > 0 {
		end = min(m.ListOffset+m.ListHeight, end)
	}

	team := m.Phase() == PhaseTeam
	for i := m.ListOffset; i < end; i++ {
		c := m.Candidates[i]

		marker := "  "
		st := rowStyle
		if i == m.Cursor {
			marker = style.Pointer + " "
			st = cursorStyle
		}

		line := marker
		if team {
			if m.session.Selected(c.ID) {
				line += style.Selected + " "
			} else {
				line += style.Empty + " "
			}
		}
		line += c.Name + "  " + mutedStyle.Render(c.Email)
		if m.Phase() == PhaseHR && c.UserID == nil {
			line += " " + mutedStyle.Render("(no account)")
		}
		s.WriteString(st.Render(line) + "\n")
	}
}

func (m *Model) writeResult(s *strings.Builder) {
	res := *m.Result
	for _, id := range res.Succeeded {
		s.WriteString(successStyle.Render(style.Check+" "+m.label(id)) + "\n")
	}
	for _, f := range res.Failed {
		s.WriteString(errorStyle.Render(style.Cross+" "+m.label(f.ID)+": "+f.Reason) + "\n")
	}
	fmt.Fprintf(s, "\n%d of %d saved\n", len(res.Succeeded), res.Total())

	help := "enter new selection · q quit"
	if !res.OK() {
		help = "r retry failed · " + help
	}
	s.WriteString("\n" + mutedStyle.Render(help) + "\n")
}

func (m *Model) label(id int64) string {
	return m.nameOf(id) + " #" + strconv.FormatInt(id, 10)
}

func (m *Model) nameOf(id int64) string {
	if name, ok := m.names[id]; ok && name != "" {
		return name
	}
	return "employee"
}
