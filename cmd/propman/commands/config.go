package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/propman/internal/config"
	"github.com/thoreinstein/propman/internal/editor"
	"github.com/thoreinstein/propman/internal/errors"
	"github.com/thoreinstein/propman/internal/paths"
	"github.com/thoreinstein/propman/pkg/fileutil"
)

// NewConfigCmd builds "propman config" and its subcommands.
func NewConfigCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage propman configuration",
		Long: `Manage the propman configuration file.

The file sets defaults for --all, --move, --remove, --color and
--log-format, plus the chroma style used by --test previews. Without a
subcommand, lists all values.`,
		Example: `  # Show the effective configuration
  propman config

  # Always move status and tags
  propman config set move status,tags

  # Where is the file?
  propman config path

See Also: propman --help`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.runConfigList(c.OutOrStdout(), "yaml")
		},
	}

	var format string
	list := &cobra.Command{
		Use:   "list",
		Short: "List all configuration",
		Long:  `List the effective configuration as YAML, TOML or JSON.`,
		Example: `  propman config list
  propman config list --format toml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.runConfigList(c.OutOrStdout(), format)
		},
	}
	list.Flags().StringVar(&format, "format", "yaml", "output format: yaml, toml, json")

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long:  `Print one configuration value. List values are printed one per line.`,
		Example: `  propman config get style
  propman config get move`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runConfigGet(c.OutOrStdout(), args[0])
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save the file.

List keys (move, remove) take comma separated values. The result is
validated before it is written.`,
		Example: `  propman config set color never
  propman config set move status,tags`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return a.runConfigSet(c.OutOrStdout(), args[0], args[1])
		},
	}

	edit := &cobra.Command{
		Use:   "edit",
		Short: "Open configuration in $EDITOR",
		Long: `Open the configuration file in your editor, creating it with the
current values first if it does not exist.`,
		Example: `  EDITOR=nano propman config edit`,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.runConfigEdit(c)
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), config.Used())
			return err
		},
	}

	c.AddCommand(list, get, set, edit, path)
	return c
}

func (a *app) runConfigList(w io.Writer, format string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err = fileutil.MarshalYAML(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	default:
		return errors.NewUserError(errors.Wrapf(errors.ErrInvalidFlag, "unknown format %q", format), "use --format yaml, toml or json")
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "encoding config"), "")
	}
	_, err = w.Write(data)
	return err
}

func checkKey(key string) error {
	if slices.Contains(config.Keys(), key) {
		return nil
	}
	return errors.NewUserError(
		errors.Newf("unknown config key %q", key),
		"valid keys: "+strings.Join(config.Keys(), ", "),
	)
}

func (a *app) runConfigGet(w io.Writer, key string) error {
	if _, err := a.config(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}

	switch key {
	case config.KeyMove, config.KeyRemove:
		for _, item := range viper.GetStringSlice(key) {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, viper.GetString(key))
	return err
}

// runConfigSet does not require the current file to be valid, so it can
// repair a bad value.
func (a *app) runConfigSet(w io.Writer, key, raw string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	var value any
	switch key {
	case config.KeyMove, config.KeyRemove:
		value = splitList(raw)
	case config.KeyAll:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(errors.ErrInvalidFlag, "%s must be true or false", key), "")
		}
		value = b
	case config.KeyVersion:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(errors.ErrInvalidFlag, "%s must be a number", key), "")
		}
		value = n
	default:
		value = raw
	}
	viper.Set(key, value)

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "decoding config"), "")
	}
	if err := cfg.Validate(); err != nil {
		return errors.NewUserError(err, "")
	}
	if err := writeConfig(config.Used(), &cfg); err != nil {
		return err
	}
	a.cfg = &cfg

	_, err := fmt.Fprintf(w, "Set %s = %v\n", key, value)
	return err
}

func (a *app) runConfigEdit(c *cobra.Command) error {
	path := config.Used()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := a.cfg
		if cfg == nil {
			cfg = &config.Config{}
			if err := viper.Unmarshal(cfg); err != nil {
				return errors.NewSystemError(errors.Wrap(err, "decoding config"), "")
			}
		}
		if err := writeConfig(path, cfg); err != nil {
			return err
		}
		a.logger.Info("created config file", "path", path)
	}

	return editor.Open(c.Context(), path, editor.Streams{
		In:  c.InOrStdin(),
		Out: c.OutOrStdout(),
		Err: c.ErrOrStderr(),
	})
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	items := []string{}
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func writeConfig(path string, cfg *config.Config) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.NewSystemError(err, "")
	}
	if err := fileutil.AtomicWriteYAML(path, cfg, 0o600); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}
	return nil
}
