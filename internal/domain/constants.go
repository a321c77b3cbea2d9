package domain

// Defaults applied when a command or setting leaves a field empty.
const (
	DefaultShell        = "bash"
	DefaultTerminalName = "Context Shell Runner"
)

// Configuration locations.
const (
	// ConfigDirName is the per-user configuration directory under $HOME
	ConfigDirName = ".ctxrun"
	// ConfigFileName is the per-user configuration file inside ConfigDirName
	ConfigFileName = "config.yaml"
	// WorkspaceConfigFile is the workspace-level overlay
	WorkspaceConfigFile = ".ctxrun.yaml"
	// VSCodeSettingsFile is read relative to the workspace root
	VSCodeSettingsFile = ".vscode/settings.json"
	// SettingsSection is the VS Code settings prefix
	SettingsSection = "contextShellRunner"
)

// Environment variables.
const (
	EnvConfig    = "CTXRUN_CONFIG"
	EnvWorkspace = "CTXRUN_WORKSPACE"
	EnvDebug     = "CTXRUN_DEBUG"
	// EnvTerminal is exported to commands run by the exec terminal
	EnvTerminal = "CTXRUN_TERMINAL"
)

// WorkspaceMarkers identify a workspace root when walking up from the working directory.
var WorkspaceMarkers = []string{".git", ".vscode", WorkspaceConfigFile}
