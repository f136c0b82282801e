// Package commands implements the CLI commands for the solverify tool.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.osec.io/solverify/internal/app"
	"go.osec.io/solverify/internal/build"
	"go.osec.io/solverify/internal/core/domain"
)

// Application is the surface of the app layer the commands drive.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	VerifyFromRepo(ctx context.Context, opts app.VerifyRepoOptions) error
	VerifyFromImage(ctx context.Context, opts app.VerifyImageOptions) error
	ExecutableHash(ctx context.Context, path string) (domain.Digest, error)
	ProgramHash(ctx context.Context, programID domain.Pubkey, rpcURL string) (domain.Digest, error)
	BufferHash(ctx context.Context, address domain.Pubkey, rpcURL string) (domain.Digest, error)
}

// CLI represents the command line interface for solverify.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	out     io.Writer
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "solverify",
		Short:         "Verify that a deployed Solana program matches a public source build",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		out:     os.Stdout,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newVerifyFromRepoCmd())
	rootCmd.AddCommand(c.newVerifyFromImageCmd())
	rootCmd.AddCommand(c.newExecutableHashCmd())
	rootCmd.AddCommand(c.newProgramHashCmd())
	rootCmd.AddCommand(c.newBufferHashCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
