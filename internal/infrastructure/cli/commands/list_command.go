package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doeshing/ctxrun/internal/app"
	"github.com/doeshing/ctxrun/internal/domain"
)

// NewListCommand creates the list command
func NewListCommand(container *app.Container) *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list <path>",
		Short: "List the commands that apply to a file or folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.RunService == nil {
				return errors.New(ErrRunServiceUnavailable)
			}
			plan, err := container.RunService.Plan(cmd.Context(), args[0], workspace)
			if err != nil {
				return err
			}
			return renderEligible(cmd.OutOrStdout(), plan.Eligible)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "Workspace root (default: detected)")
	return cmd
}

func renderEligible(out io.Writer, entries []domain.CommandEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoEligibleCommands)
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tSHELL\tCOMMAND")
	for _, entry := range entries {
		shell := entry.Config.EffectiveShell() + " " + entry.Config.ShellFlag()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Key, entry.Config.Label(entry.Key), shell, entry.Config.Command)
	}
	return w.Flush()
}

// NewVarsCommand creates the vars command
func NewVarsCommand(container *app.Container) *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "vars <path>",
		Short: "Show the variables available to command templates for a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.RunService == nil {
				return errors.New(ErrRunServiceUnavailable)
			}
			plan, err := container.RunService.Plan(cmd.Context(), args[0], workspace)
			if err != nil {
				return err
			}
			vars := domain.BuildVariables(plan.Resource, plan.Workspace)
			out := cmd.OutOrStdout()
			for _, name := range domain.VariableNames {
				fmt.Fprintf(out, "${%s}=%s\n", name, vars[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "Workspace root (default: detected)")
	return cmd
}
