package pybin

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install Python scripts as global commands"
	MsgInstallShort    = "Install every script under the scripts root"
	MsgListShort       = "List installed scripts"
	MsgListLong        = "List scans the install directory and shows every installed script copy."
	MsgStatusShort     = "Show the health of installed command aliases"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Error messages
	MsgErrInitPaths      = "failed to initialize paths: %w"
	MsgErrLoadConfig     = "failed to load configuration: %w"
	MsgErrInstallScripts = "failed to install scripts: %w"
	MsgErrListScripts    = "failed to list installed scripts: %w"
	MsgErrStatus         = "failed to check alias status: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/pybin/pybin.toml)"
	MsgFlagBatch   = "Execute the pass as one filesystem transaction"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"

	// Debug messages
	MsgDebugScriptsRoot = "Debug: Using scripts root: %s (fallback=%v)\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimSpace(msgInstallExampleRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimSpace(msgListExampleRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimSpace(msgStatusExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
