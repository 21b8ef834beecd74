// Package cli wires the resolver, the expression file watcher and the
// terminal UI into the human-date command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/technologicalMayhem/human-date-parser/datetime"
)

// envPrefix is prepended to flag names when read from the environment,
// e.g. HUMANDATE_WEEKDAY_TIME.
const envPrefix = "HUMANDATE"

// errFailures ends a command with exit status 1 after it already reported
// what went wrong.
var errFailures = errors.New("one or more expressions failed to resolve")

// app holds the state shared by every subcommand once flags are parsed.
type app struct {
	clock  clockwork.Clock
	v      *viper.Viper
	cfg    config
	parser *datetime.Parser
	pinned *datetime.DateTime
}

// reference returns the pinned --ref value, or the clock's current wall time.
func (a *app) reference() datetime.DateTime {
	if a.pinned != nil {
		return *a.pinned
	}
	return datetime.FromTime(a.clock.Now())
}

// NewRootCmd builds the command tree around clock. Tests pass a fake clock.
func NewRootCmd(clock clockwork.Clock) *cobra.Command {
	a := &app{clock: clock, v: viper.New()}

	root := &cobra.Command{
		Use:   "human-date",
		Short: "Resolve human date expressions against a reference instant",
		Long: `human-date resolves English date and time phrases such as
"last friday at 19:45", "in 3 days" or "10 hours and 5 minutes ago".

Without a subcommand it reads one expression per line from stdin and prints
the reference instant and the calculated value for each.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.repl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := root.PersistentFlags()
	flags.String("ref", "", "pin the reference instant (any expression, resolved against the clock)")
	flags.Bool("json", false, "print JSON lines instead of text")
	flags.String("unqualified-weekday", datetime.UnqualifiedThisWeek.String(), "meaning of a bare weekday: this|upcoming")
	flags.String("weekday-time", datetime.WeekdayMidnight.String(), "time of day for weekdays without a clock: midnight|reference")
	flags.String("log-level", "warn", "log level: debug|info|warn|error")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	// Binding only fails for a nil flag.
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.newResolveCmd(),
		a.newCheckCmd(),
		a.newWatchCmd(),
		a.newTUICmd(),
	)
	return root
}

// setup loads the configuration, installs the logger and builds the parser.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	initLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	a.parser = datetime.New(
		datetime.WithUnqualifiedWeekday(cfg.Unqualified),
		datetime.WithWeekdayTime(cfg.WeekdayTime),
	)

	if cfg.Ref != "" {
		now := datetime.FromTime(a.clock.Now())
		ref, err := a.parser.Parse(cfg.Ref, now)
		if err != nil {
			return errors.Wrap(err, "invalid --ref")
		}
		a.pinned = &ref
	}

	logger.Debug("configured",
		"command", cmd.Name(),
		"ref", a.reference().String(),
		"pinned", a.pinned != nil,
		"unqualified_weekday", cfg.Unqualified.String(),
		"weekday_time", cfg.WeekdayTime.String(),
	)
	return nil
}

// Execute runs the command line and exits the process on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd(clockwork.NewRealClock())
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailures) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
