package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hrdesk/internal/app"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseKind maps a picker name to its selection kind.
func parseKind(name string) (domain.SelectionKind, error) {
	for _, k := range []domain.SelectionKind{domain.PickTeam, domain.PickManager, domain.PickHR} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(domain.ErrWrongSelectionKind, "unknown picker"), "picker", name)
}

func (c *CLI) newCandidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates <team|manager|hr>",
		Short: "List the employees eligible for a picker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			query, _ := cmd.Flags().GetString("query")
			manager, _ := cmd.Flags().GetString("manager")

			return c.app.Candidates(cmd.Context(), app.CandidatesOptions{
				Kind:    kind,
				Query:   query,
				Manager: manager,
			})
		},
	}
	cmd.Flags().StringP("query", "q", "", "Only list employees whose name or email contains this text")
	cmd.Flags().StringP("manager", "m", "", "Reporting manager the team is picked for (id, email or name)")
	return cmd
}

func (c *CLI) newAssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign --manager <employee> <member>...",
		Short: "Make an employee a reporting manager of the given team members",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, _ := cmd.Flags().GetString("manager")
			return c.app.Assign(cmd.Context(), manager, args)
		},
	}
	cmd.Flags().StringP("manager", "m", "", "Reporting manager (id, email or name)")
	_ = cmd.MarkFlagRequired("manager")
	return cmd
}

func (c *CLI) newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <employee>",
		Short: "Promote an employee to HR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Promote(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive [team|hr]",
		Short: "Pick a team or an HR coordinator in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.PickTeam
			if len(args) == 1 {
				k, err := parseKind(args[0])
				if err != nil {
					return err
				}
				kind = k
			}
			mode, _ := cmd.Flags().GetString("mode")

			return c.app.Interactive(cmd.Context(), app.InteractiveOptions{
				Kind: kind,
				Mode: mode,
			})
		},
	}
	cmd.Flags().StringP("mode", "o", "auto", "Output mode: auto, tui, or linear")
	return cmd
}
