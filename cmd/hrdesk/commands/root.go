// Package commands implements the CLI commands for hrdesk.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/hrdesk/internal/app"
	"go.trai.ch/hrdesk/internal/build"
	"go.trai.ch/hrdesk/internal/core/domain"
)

// CLI represents the command line interface for hrdesk.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.GlobalOptions)
	Candidates(ctx context.Context, opts app.CandidatesOptions) error
	Assign(ctx context.Context, manager string, members []string) error
	Promote(ctx context.Context, ref string) error
	Interactive(ctx context.Context, opts app.InteractiveOptions) error
	Liaisons(ctx context.Context) error
	Managers(ctx context.Context) error
	ManagerDetails(ctx context.Context, managerID int64) error
	RemoveManager(ctx context.Context, managerID int64) error
	RemoveTeamMember(ctx context.Context, employeeID int64) error
	AddEmployee(ctx context.Context, e domain.NewEmployee) (domain.Employee, error)
	Export(ctx context.Context, path string) error
	Refresh(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hrdesk",
		Short:         "Assign reporting managers and HR coordinators from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Trace every backend call")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Ignore the stored roster snapshot")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		c.app.Configure(app.GlobalOptions{
			Verbose:  verbose,
			JSONLogs: jsonLogs,
			NoCache:  noCache,
		})
	}

	rootCmd.AddCommand(c.newCandidatesCmd())
	rootCmd.AddCommand(c.newAssignCmd())
	rootCmd.AddCommand(c.newPromoteCmd())
	rootCmd.AddCommand(c.newInteractiveCmd())
	rootCmd.AddCommand(c.newLiaisonsCmd())
	rootCmd.AddCommand(c.newManagersCmd())
	rootCmd.AddCommand(c.newEmployeesCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newRefreshCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
