// Package commands implements the propman command line.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/propman/cmd"
	"github.com/thoreinstein/propman/internal/config"
	"github.com/thoreinstein/propman/internal/errors"
	"github.com/thoreinstein/propman/internal/logging"
)

// debugEnv raises the log level when -v is not given: 1 or true for debug,
// 2 for trace.
const debugEnv = "PROPMAN_DEBUG"

const usageHint = `Usage: propman -f <file> [-a] [--move <name>...] [--remove <name>...] [-t] [-w]
Run 'propman --help' for details.
`

// options holds the root command flags.
type options struct {
	file        string
	all         bool
	move        []string
	remove      []string
	test        bool
	write       bool
	interactive bool
	verbosity   int
	quiet       bool
	logFormat   string
	logFile     string
	configPath  string
	color       string
}

// app is the state shared by the root command and its subcommands.
type app struct {
	opts    options
	cfg     *config.Config
	loadErr error
	logger  *slog.Logger
	logOut  io.Closer
}

// config returns the loaded configuration, or the load error as a user
// facing error.
func (a *app) config() (*config.Config, error) {
	if a.loadErr != nil {
		return nil, errors.NewConfigError(a.loadErr)
	}
	return a.cfg, nil
}

// NewRootCmd builds the propman command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: logging.NewDiscard()}

	root := &cobra.Command{
		Use:   "propman",
		Short: "Move, normalize and remove properties in note files",
		Long: `propman edits the properties of a Markdown note: the YAML frontmatter
block at the top and inline "key:: value" fields in the body.

Properties named with --move are relocated to the end of the frontmatter,
converting inline fields and expanding comma separated values into lists.
--all moves every inline field into the frontmatter, --remove deletes
properties. Nothing is written unless --write is given; --test prints the
result.`,
		Example: `  # Preview moving two properties
  propman -f note.md --move status tags --test

  # Move every inline field and drop a property, saving the file
  propman -f note.md -a -rm draft -w

  # Pick properties to move interactively
  propman -f note.md -i -w

See Also: propman config`,
		Version:       cmd.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if c.Root() == c && c.Flags().NFlag() == 0 {
				return nil
			}
			return a.setup(c)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.logOut != nil {
				return errors.Wrap(a.logOut.Close(), "closing log file")
			}
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			if c.Flags().NFlag() == 0 {
				_, err := io.WriteString(c.OutOrStdout(), usageHint)
				return err
			}
			return a.runEdit(c)
		},
	}
	root.SetVersionTemplate("propman {{.Version}}\n")

	f := root.Flags()
	f.StringVarP(&a.opts.file, "file", "f", "", "note file to edit")
	f.BoolVarP(&a.opts.all, config.KeyAll, "a", false, "move every inline property into the frontmatter")
	f.StringSliceVar(&a.opts.move, config.KeyMove, nil, "properties to move to the end of the frontmatter (alias -mv)")
	f.StringSliceVar(&a.opts.remove, config.KeyRemove, nil, "properties to delete (alias -rm)")
	f.BoolVarP(&a.opts.test, "test", "t", false, "print the resulting document (implies -v)")
	f.BoolVarP(&a.opts.write, "write", "w", false, "write the result back to the file")
	f.BoolVarP(&a.opts.interactive, "interactive", "i", false, "choose more properties to move with a fuzzy finder")
	f.StringVar(&a.opts.color, config.KeyColor, config.DefaultColor, "highlight --test output: auto, always, never")

	pf := root.PersistentFlags()
	pf.CountVarP(&a.opts.verbosity, "verbose", "v", "increase verbosity (-v, -vv, -vvv)")
	pf.BoolVarP(&a.opts.quiet, "quiet", "q", false, "only log errors")
	pf.StringVar(&a.opts.logFormat, "log-format", config.DefaultLogFormat, "log format: text, json")
	pf.StringVar(&a.opts.logFile, "log-file", "", "also write logs to this file as JSON")
	pf.StringVar(&a.opts.configPath, "config", "", "config file (default: "+config.Used()+")")

	root.AddCommand(NewVersionCmd())
	root.AddCommand(NewConfigCmd(a))

	return root
}

// setup loads configuration and installs the logger. Configuration errors
// are kept in a.loadErr so "config edit" can still repair a broken file.
func (a *app) setup(c *cobra.Command) error {
	if err := a.validateFlags(c); err != nil {
		return err
	}

	config.Init()
	bindFlags(c)
	a.cfg, a.loadErr = config.Load(a.opts.configPath)

	return a.setupLogging(c)
}

func (a *app) validateFlags(c *cobra.Command) error {
	if a.opts.quiet && a.opts.verbosity > 0 {
		return errors.NewUserError(errors.Wrap(errors.ErrInvalidFlag, "--quiet and --verbose"), "use only one of --quiet and --verbose")
	}
	if c.Flags().Changed(config.KeyColor) {
		if _, err := logging.ParseColorMode(a.opts.color); err != nil {
			return errors.NewUserError(err, "use --color auto, always or never")
		}
	}
	if _, err := logging.ParseFormat(a.opts.logFormat); err != nil {
		return errors.NewUserError(err, "use --log-format text or json")
	}
	for flag, names := range map[string][]string{config.KeyMove: a.opts.move, config.KeyRemove: a.opts.remove} {
		for _, name := range names {
			if err := config.CheckPropertyName(name); err != nil {
				return errors.NewUserError(errors.Wrapf(errors.ErrInvalidFlag, "--%s %q: %v", flag, name, err), "give the property name without its colon")
			}
		}
	}
	return nil
}

// bindFlags lets changed flags override the config file and environment.
func bindFlags(c *cobra.Command) {
	for _, key := range []string{config.KeyAll, config.KeyMove, config.KeyRemove, config.KeyColor} {
		if fl := c.Flags().Lookup(key); fl != nil {
			_ = viper.BindPFlag(key, fl)
		}
	}
	if fl := c.Flags().Lookup("log-format"); fl != nil {
		_ = viper.BindPFlag(config.KeyLogFormat, fl)
	}
}

func (a *app) setupLogging(c *cobra.Command) error {
	level := slog.LevelError
	if !a.opts.quiet {
		v := a.opts.verbosity
		if v == 0 {
			switch strings.ToLower(os.Getenv(debugEnv)) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		if a.opts.test && v == 0 {
			v = 1
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, err := logging.ParseFormat(viper.GetString(config.KeyLogFormat))
	if err != nil {
		format = logging.FormatText
	}

	handler := logging.NewHandlerFor(logging.Config{
		Level:  level,
		Format: format,
		Output: c.ErrOrStderr(),
	})

	if a.opts.logFile != "" {
		f, err := os.OpenFile(a.opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		a.logOut = f
		handler = logging.NewMultiHandler(handler, logging.NewHandlerFor(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}))
	}

	a.logger = slog.New(handler)
	slog.SetDefault(a.logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, a.logger))
	return nil
}

// Execute runs propman with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs propman with args and the given output streams.
func ExecuteArgs(args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd()
	root.SetArgs(expandArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}
