package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/doeshing/ctxrun/internal/app"
	"github.com/doeshing/ctxrun/internal/domain"
)

// RunOptions are the flags shared by the root command and `run`.
type RunOptions struct {
	CommandKey    string
	Workspace     string
	DryRun        bool
	Copy          bool
	StrictQuoting bool
	Terminal      string
	TerminalName  string
}

// ExitError carries the exit status of the command that ran in the terminal.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

// BindRunFlags registers the run flags on fs.
func BindRunFlags(fs *pflag.FlagSet, opts *RunOptions) {
	fs.StringVarP(&opts.CommandKey, "command", "k", "", "Run the command with this key instead of prompting")
	fs.StringVar(&opts.Workspace, "workspace", "", "Workspace root (default: detected)")
	fs.BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print the composed shell line without running it")
	fs.BoolVar(&opts.Copy, "copy", false, "Copy the composed shell line to the clipboard instead of running it")
	fs.BoolVar(&opts.StrictQuoting, "strict-quoting", false, "Quote directory and command as single shell words")
	fs.StringVar(&opts.Terminal, "terminal", "", "Terminal backend: exec or tmux (default from config)")
	fs.StringVar(&opts.TerminalName, "terminal-name", "", "Terminal session name (default from config)")
}

// NewRunCommand creates the run command
func NewRunCommand(container *app.Container) *cobra.Command {
	var opts RunOptions

	cmd := &cobra.Command{
		Use:   "run <path>",
		Short: "Pick a configured command for a file or folder and run it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExecuteRun(cmd, container, opts, args)
		},
	}

	BindRunFlags(cmd.Flags(), &opts)
	return cmd
}

// ExecuteRun runs one invocation for the path in args.
func ExecuteRun(cmd *cobra.Command, container *app.Container, opts RunOptions, args []string) error {
	if container.RunService == nil {
		return errors.New(ErrRunServiceUnavailable)
	}
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	resp, err := container.RunService.Run(domain.RunRequest{
		Context:       cmd.Context(),
		Path:          path,
		CommandKey:    opts.CommandKey,
		Workspace:     opts.Workspace,
		DryRun:        opts.DryRun || opts.Copy,
		StrictQuoting: opts.StrictQuoting,
		Terminal: domain.TerminalSettings{
			Kind: domain.TerminalKind(opts.Terminal),
			Name: opts.TerminalName,
		},
	})
	if err != nil {
		return err
	}
	if opts.Copy {
		return copyRunResponse(container, resp)
	}
	renderRunResponse(cmd.OutOrStdout(), resp)
	if resp.Result != nil && resp.Result.ExitCode != 0 {
		return &ExitError{Code: resp.Result.ExitCode}
	}
	return nil
}

func renderRunResponse(out io.Writer, resp domain.RunResponse) {
	if resp.Outcome != domain.OutcomePreview || resp.Invocation == nil {
		return
	}
	fmt.Fprintln(out, resp.Invocation.Line)
}

func copyRunResponse(container *app.Container, resp domain.RunResponse) error {
	if resp.Outcome != domain.OutcomePreview || resp.Invocation == nil {
		return nil
	}
	if container.Clipboard == nil {
		return errors.New(ErrClipboardUnavailable)
	}
	if err := container.Clipboard.Copy(resp.Invocation.Line); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	if container.RunService.Notifier != nil {
		container.RunService.Notifier.Info(MsgCopiedToClipboard)
	}
	return nil
}
