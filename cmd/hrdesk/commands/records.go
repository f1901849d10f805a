package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/zerr"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrValidation, "id must be a positive number"), "arg", arg)
	}
	return id, nil
}

func (c *CLI) newLiaisonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "liaisons",
		Short: "Show the reporting manager and HR coordinator of every employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Liaisons(cmd.Context())
		},
	}
}

func (c *CLI) newManagersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "managers",
		Short: "Inspect and edit reporting managers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the reporting managers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Managers(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <manager-id>",
		Short: "Show a reporting manager and its team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.app.ManagerDetails(cmd.Context(), id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <manager-id>",
		Short: "Revoke the reporting manager role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.app.RemoveManager(cmd.Context(), id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove-member <employee-id>",
		Short: "Detach an employee from its reporting manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.app.RemoveTeamMember(cmd.Context(), id)
		},
	})

	return cmd
}

func (c *CLI) newEmployeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage employees",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Create an employee with a login account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			get := func(name string) string {
				v, _ := flags.GetString(name)
				return v
			}

			created, err := c.app.AddEmployee(cmd.Context(), domain.NewEmployee{
				FirstName:      get("first-name"),
				LastName:       get("last-name"),
				Email:          get("email"),
				PhoneNumber:    get("phone"),
				DateOfBirth:    get("date-of-birth"),
				Gender:         get("gender"),
				CompanyID:      get("company-id"),
				Designation:    get("designation"),
				CorporateEmail: get("corporate-email"),
				JoiningDate:    get("joining-date"),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", created.ID)
			return nil
		},
	}
	add.Flags().String("first-name", "", "First name")
	add.Flags().String("last-name", "", "Last name")
	add.Flags().String("email", "", "Personal email")
	add.Flags().String("phone", "", "Phone number")
	add.Flags().String("date-of-birth", "", "Date of birth (YYYY-MM-DD)")
	add.Flags().String("gender", "", "Gender")
	add.Flags().String("company-id", "", "Company employee id")
	add.Flags().String("designation", "", "Job title")
	add.Flags().String("corporate-email", "", "Corporate email or mailbox name")
	add.Flags().String("joining-date", "", "Joining date (YYYY-MM-DD)")

	cmd.AddCommand(add)
	return cmd
}

func (c *CLI) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write the roster and liaisons to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Export(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refetch the employee roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Refresh(cmd.Context())
		},
	}
}
