package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/commons/core/config"
	"github.com/msto63/commons/core/log"
	"github.com/msto63/commons/internal/profile"
	"github.com/msto63/commons/internal/render"
	"github.com/msto63/commons/utils/stringx"
)

// EnvPrefix prefixes environment overrides of configuration keys
const EnvPrefix = "SEGMENT"

// app holds the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	output    string
	logLevel  string
	logFormat string
	verbose   bool
	raw       bool

	cfg    *config.Config
	log    *log.Logger
	runID  string
	format render.Format
}

// Execute runs the segment command and logs a returned error
func Execute() error {
	root, a := newRootCmd()
	err := root.Execute()
	if err != nil {
		a.logger(root.ErrOrStderr()).LogError(err)
	}
	return err
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "segment",
		Short: "Escape-aware text segmentation",
		Long: `segment splits, scans and extracts text around delimiters while
honoring escape tokens.

Commands:
  scan      - offsets of unescaped occurrences of a needle
  extract   - contents of delimited spans
  split     - split after each delimiter, keeping it
  retain    - split on a pattern, keeping the matches
  chop      - alternate gaps and pattern matches
  run       - run a profile from the configuration
  profiles  - list configured profiles`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML (default: discovered .segment.toml)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: plain, json or table")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (default: info)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json, console or logfmt")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output, same as --log-level debug")
	flags.BoolVar(&a.raw, "raw", false, "keep the trailing newline of stdin input")

	rootCmd.AddCommand(
		newScanCmd(a),
		newExtractCmd(a),
		newSplitCmd(a),
		newRetainCmd(a),
		newChopCmd(a),
		newRunCmd(a),
		newProfilesCmd(a),
		newVersionCmd(a),
	)

	return rootCmd, a
}

// setup loads the configuration and builds the logger. Flags take
// precedence over configuration values.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadWithOptions(a.cfgFile, config.LoadOptions{EnvPrefix: EnvPrefix})
	} else {
		a.cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(stringx.FirstNonEmpty(a.logLevel, a.cfg.GetString("log.level", "info")))
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.LevelDebug
	}
	logFormat, err := log.ParseFormat(stringx.FirstNonEmpty(a.logFormat, a.cfg.GetString("log.format", "text")))
	if err != nil {
		return err
	}

	a.runID = uuid.New().String()
	a.log = log.NewWithConfig(log.Config{
		Level:  level,
		Format: logFormat,
		Output: cmd.ErrOrStderr(),
		Name:   "segment",
	}).WithCorrelationID(a.runID)

	a.format, err = render.ParseFormat(stringx.FirstNonEmpty(a.output, a.cfg.GetString("output.format", "plain")))
	if err != nil {
		return err
	}

	a.log.Debug("configuration loaded",
		log.String("file", a.cfg.FilePath()),
		log.String("command", cmd.Name()))
	return nil
}

// logger returns the invocation logger, or a plain stderr logger when setup
// did not get that far
func (a *app) logger(w io.Writer) *log.Logger {
	if a.log != nil {
		return a.log
	}
	return log.NewWithConfig(log.Config{Level: log.LevelInfo, Format: log.FormatText, Output: w, Name: "segment"})
}

// escape returns the --escape flag, falling back to defaults.escape from the
// configuration and then to fallback
func (a *app) escape(cmd *cobra.Command, flag, fallback string) string {
	if cmd.Flags().Changed("escape") {
		return flag
	}
	return a.cfg.GetString("defaults.escape", fallback)
}

// input returns the positional text argument at index i, or stdin
func (a *app) input(cmd *cobra.Command, args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := string(data)
	if !a.raw {
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
	}
	a.log.Debug("input read from stdin", log.Int("bytes", len(text)))
	return text, nil
}

// execute runs p on the input and renders the result
func (a *app) execute(cmd *cobra.Command, p profile.Profile, text string) error {
	result, err := profile.RunLogged(a.log, p, text)
	if err != nil {
		return err
	}
	return a.renderer(cmd).Result(result)
}

func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), a.format).WithRunID(a.runID)
}
