package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/ctxrun/assets"
	"github.com/doeshing/ctxrun/internal/app"
	configapp "github.com/doeshing/ctxrun/internal/application/config"
	configinfra "github.com/doeshing/ctxrun/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	var workspace string

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect ctxrun configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container, workspace)
		},
	}
	configCmd.PersistentFlags().StringVar(&workspace, "workspace", "", "Workspace root (default: detected)")

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the merged configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfiguration(cmd, container, workspace)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "List configuration sources in precedence order",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfigurationSources(cmd, container, workspace)
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the merged configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return validateConfiguration(cmd, container, workspace)
			},
		},
		&cobra.Command{
			Use:   "example",
			Short: "Print an example configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := cmd.OutOrStdout().Write(assets.ExampleConfigYAML)
				return err
			},
		},
	)

	return configCmd
}

// showConfiguration prints the merged settings as YAML
func showConfiguration(cmd *cobra.Command, container *app.Container, workspace string) error {
	if container.ConfigProvider == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	if container.Workspace == nil {
		return errors.New(ErrWorkspaceResolverUnavailable)
	}
	root := container.Workspace.Root(cmd.Context(), workspace)
	settings, err := container.ConfigProvider.Load(cmd.Context(), root)
	if err != nil {
		return err
	}
	raw, err := configinfra.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(raw)
	return err
}

// showConfigurationSources prints each source and whether it exists
func showConfigurationSources(cmd *cobra.Command, container *app.Container, workspace string) error {
	if container.ConfigLoader == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	if container.Workspace == nil {
		return errors.New(ErrWorkspaceResolverUnavailable)
	}
	root := container.Workspace.Root(cmd.Context(), workspace)
	return renderSources(cmd.OutOrStdout(), container.ConfigLoader.SourceStatuses(root))
}

func renderSources(out io.Writer, sources []configinfra.SourceStatus) error {
	for _, source := range sources {
		state := "missing"
		if source.Found {
			state = "found"
		}
		if _, err := fmt.Fprintf(out, "%-7s %s\n", state, source.Path); err != nil {
			return err
		}
	}
	return nil
}

// validateConfiguration loads and validates the merged settings
func validateConfiguration(cmd *cobra.Command, container *app.Container, workspace string) error {
	if container.ConfigProvider == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	if container.Workspace == nil {
		return errors.New(ErrWorkspaceResolverUnavailable)
	}
	root := container.Workspace.Root(cmd.Context(), workspace)
	settings, err := container.ConfigProvider.Load(cmd.Context(), root)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := configapp.Validate(settings); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), MsgConfigurationValid)
	return nil
}
