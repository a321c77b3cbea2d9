package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/ctxrun/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show ctxrun version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderVersion(cmd.OutOrStdout(), version.Current(), short)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}

func renderVersion(out io.Writer, info version.Info, short bool) error {
	if short {
		_, err := fmt.Fprintln(out, info.Version)
		return err
	}

	fmt.Fprintf(out, "ctxrun %s\n", info.Version)
	if info.Commit != "" {
		commit := info.Commit
		if info.Modified {
			commit += " (modified)"
		}
		fmt.Fprintf(out, "commit:   %s\n", commit)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(out, "built:    %s\n", info.BuildDate)
	}
	_, err := fmt.Fprintf(out, "platform: %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
	return err
}
