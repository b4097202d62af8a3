package notifyrules

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rule-based notification transformation"
	MsgFieldsShort     = "List the keys a rule may set"
	MsgRulesShort      = "Print the configured rules"
	MsgCheckShort      = "Validate the rule file"
	MsgApplyShort      = "Run the rules against a sample notification"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgCheckOK       = "%d rules loaded from %s\n"
	MsgDefaultsOnly  = "built-in defaults"
	MsgMatchedRules  = "Matched rules: %s\n"
	MsgNoRuleMatched = "No rule matched."

	// Error messages
	MsgErrLoadConfig = "failed to load rules: %w"
	MsgErrBindRules  = "invalid rules: %w"
	MsgErrNoSuchRule = "no rule named %q"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Rule file (default $XDG_CONFIG_HOME/notifyrules/rules.toml)"
	MsgFlagOutput       = "Output format: toml or yaml"
	MsgFlagMetrics      = "Print rule counters after applying"
	MsgFlagDBusTimeout  = "Expiry requested by the client (seconds or duration, negative for server default)"
	MsgFlagUrgency      = "Urgency: low, normal or critical"
	MsgFlagRulesOutput  = "Dump rules as toml or yaml instead of key = value lines"
	MsgFlagFieldsFilter = "Only list fields of this group: filter or modifying"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/fields-long.txt
	msgFieldsLongRaw string
	MsgFieldsLong    = strings.TrimSpace(msgFieldsLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
