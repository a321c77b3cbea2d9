package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/ctxrun/internal/app"
	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewRootCmd wires the cobra root command. The container is built once the
// global flags are parsed.
func NewRootCmd(opts Options) *cobra.Command {
	container := &app.Container{}
	var (
		configPath string
		debug      bool
		runOpts    commands.RunOptions
	)

	root := &cobra.Command{
		Use:   "ctxrun [path]",
		Short: "Run configured shell commands against a file or folder",
		Long: `ctxrun shows the shell commands from your settings that apply to a file or
folder, lets you pick one, and runs it in a named terminal.

Templates may use ${path}, ${dir}, ${name}, ${isFile}, ${isFolder} and ${workspace}.
Commands are read from ~/.ctxrun/config.yaml (or $` + domain.EnvConfig + `) and from the
workspace's .vscode/settings.json and .ctxrun.yaml.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := app.BuildContainer(cmd.Context(), app.Options{
				ConfigPath: configPath,
				Verbose:    opts.Verbose || debug,
				Stdin:      opts.Stdin,
				Stdout:     opts.Stdout,
				Stderr:     opts.Stderr,
			})
			if err != nil {
				return err
			}
			*container = *built
			container.RunService.Selector = NewPicker(opts.Stdin, opts.Stderr)
			container.RunService.Notifier = NewNotifier(opts.Stderr)
			container.Clipboard = NewClipboard()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return commands.ExecuteRun(cmd, container, runOpts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to the user configuration file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose logging")
	commands.BindRunFlags(root.Flags(), &runOpts)

	root.AddCommand(commands.NewRunCommand(container))
	root.AddCommand(commands.NewListCommand(container))
	root.AddCommand(commands.NewVarsCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}
