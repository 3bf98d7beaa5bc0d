package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/billsplit/pkg/runtime/terminal/commands"
	"github.com/de-tools/billsplit/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// Run executes the CLI with explicit arguments.
func (cli *CLI) Run(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := commands.NewSplitCmd(map[string]commands.ReportHandler{
		"text":  NewReporter(opts.Output),
		"table": export.NewReporter(opts.Output),
	})
	cmd.SetOut(opts.Output)
	cmd.SetErr(opts.ErrOutput)

	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}
