package commands

// Error messages
const (
	ErrConfigLoaderUnavailable      = "config loader unavailable"
	ErrDoctorServiceUnavailable     = "doctor service unavailable"
	ErrRunServiceUnavailable        = "run service unavailable"
	ErrClipboardUnavailable         = "clipboard unavailable"
	ErrWorkspaceResolverUnavailable = "workspace resolver unavailable"
)

// Success messages
const (
	MsgConfigurationValid = "Configuration valid"
	MsgNoEligibleCommands = "No commands apply to this resource."
	MsgCopiedToClipboard  = "Copied to clipboard"
)
