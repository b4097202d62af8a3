package notifyrules

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/arthur-debert/notifyrules/internal/version"
	"github.com/arthur-debert/notifyrules/pkg/cobrax/topics"
	"github.com/arthur-debert/notifyrules/pkg/config"
	"github.com/arthur-debert/notifyrules/pkg/errors"
	"github.com/arthur-debert/notifyrules/pkg/logging"
	"github.com/arthur-debert/notifyrules/pkg/notification"
	"github.com/arthur-debert/notifyrules/pkg/rules"
	"github.com/arthur-debert/notifyrules/pkg/styles"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

type rootOptions struct {
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "notifyrules",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			applyUserStyles()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newApplyCmd(opts))
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newFieldsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help from the embedded topics directory
	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		topicOpts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(isTerminal()),
		}
		if err := topics.InitializeWithOptions(rootCmd, sub, topicOpts); err != nil {
			log.Warn().Err(err).Msg("Failed to load help topics")
		}
	}

	return rootCmd
}

// loadConfig reads the rule file and raises the log level if [global] asks
// for more than the flags did.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	if cfg.Global.Verbosity > o.verbosity {
		logging.SetupLogger(cfg.Global.Verbosity)
	}
	return cfg, nil
}

func newFieldsCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:     "fields",
		Short:   MsgFieldsShort,
		Long:    MsgFieldsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields []rules.Field
			switch strings.ToLower(group) {
			case "":
				fields = rules.Fields.All()
			case "filter", "filters":
				fields = rules.Fields.Filters()
			case "modifying", "modifier", "modifiers":
				fields = rules.Fields.Modifiers()
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown field group %q", group)
			}
			return renderFields(cmd.OutOrStdout(), fields)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", MsgFlagFieldsFilter)
	return cmd
}

func newRulesCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "rules [names...]",
		Short:   MsgRulesShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			rs, err := config.Bind(cfg)
			if err != nil {
				return fmt.Errorf(MsgErrBindRules, err)
			}

			if len(args) > 0 {
				var picked []*rules.Rule
				for _, name := range args {
					i := slices.IndexFunc(rs, func(r *rules.Rule) bool { return r.Name == name })
					if i < 0 {
						return errors.Newf(errors.ErrNotFound, MsgErrNoSuchRule, name)
					}
					picked = append(picked, rs[i])
				}
				rs = picked
			}

			w := cmd.OutOrStdout()
			if output != "" {
				format, err := config.ParseFormat(output)
				if err != nil {
					return err
				}
				return config.Dump(w, rs, format)
			}

			for i, r := range rs {
				if i > 0 {
					fmt.Fprintln(w)
				}
				renderRule(w, r)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagRulesOutput)
	return cmd
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			rs, err := config.Bind(cfg)
			if err != nil {
				return fmt.Errorf(MsgErrBindRules, err)
			}

			source := cfg.Path
			if source == "" {
				source = MsgDefaultsOnly
			}
			fmt.Fprint(cmd.OutOrStdout(), styles.Render("Success", fmt.Sprintf(MsgCheckOK, len(rs), source)))
			return nil
		},
	}
}

type applyOptions struct {
	appName      string
	summary      string
	body         string
	icon         string
	category     string
	stackTag     string
	desktopEntry string
	urgency      string
	transient    bool
	dbusTimeout  string
	output       string
	metrics      bool
}

func (a *applyOptions) notification() (*notification.Notification, error) {
	n := notification.New(a.appName, a.summary, a.body)
	n.Icon = a.icon
	n.Category = a.category
	n.StackTag = a.stackTag
	n.DesktopEntry = a.desktopEntry
	n.Transient = a.transient

	u, err := notification.UrgencyNames.Parse(a.urgency)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --urgency")
	}
	n.Urgency = notification.Urgency(u)

	if a.dbusTimeout != "" {
		d, err := rules.ParseTime(a.dbusTimeout)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --dbus-timeout")
		}
		n.DBusTimeout = d
	}
	return n, nil
}

func newApplyCmd(opts *rootOptions) *cobra.Command {
	a := &applyOptions{}

	cmd := &cobra.Command{
		Use:     "apply",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(a.output)
			if err != nil {
				return err
			}
			n, err := a.notification()
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			store, err := config.BuildStore(cfg, rules.WithMetrics(rules.NewMetrics(reg)))
			if err != nil {
				return fmt.Errorf(MsgErrBindRules, err)
			}
			defer store.Close()

			matched := store.Trace(n)

			w := cmd.OutOrStdout()
			if len(matched) == 0 {
				fmt.Fprintln(w, MsgNoRuleMatched)
			} else {
				fmt.Fprintf(w, MsgMatchedRules, strings.Join(matched, ", "))
			}
			fmt.Fprintln(w)

			if err := config.Encode(w, format, notificationDocument(n)); err != nil {
				return err
			}
			if a.metrics {
				fmt.Fprintln(w)
				return writeMetrics(w, reg)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.appName, "appname", "", "Application name")
	f.StringVar(&a.summary, "summary", "", "Summary line")
	f.StringVar(&a.body, "body", "", "Body text")
	f.StringVar(&a.icon, "icon", "", "Icon name or path")
	f.StringVar(&a.category, "category", "", "Notification category")
	f.StringVar(&a.stackTag, "stack-tag", "", "Stack tag")
	f.StringVar(&a.desktopEntry, "desktop-entry", "", "Desktop entry")
	f.StringVarP(&a.urgency, "urgency", "u", "normal", MsgFlagUrgency)
	f.BoolVar(&a.transient, "transient", false, "Mark the notification transient")
	f.StringVar(&a.dbusTimeout, "dbus-timeout", "", MsgFlagDBusTimeout)
	f.StringVarP(&a.output, "output", "o", "toml", MsgFlagOutput)
	f.BoolVar(&a.metrics, "metrics", false, MsgFlagMetrics)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
