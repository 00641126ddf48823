// Package main implements triectl, a command-line front end that loads a
// word list into a trie.TrieST and answers symbol-table queries against it.
//
//	triectl --dict words.txt prefix she
//	echo "she sells sea shells" | triectl longest shellsort
//	triectl --dict words.txt --wildcard '?' --output table match 's?e'
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AlexKokoz/Algs4/internal/config"
	"github.com/AlexKokoz/Algs4/internal/dict"
	"github.com/AlexKokoz/Algs4/internal/logging"
	"github.com/AlexKokoz/Algs4/trie"
)

// app carries the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	log    zerolog.Logger
	st     *trie.TrieST[int]
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	cobra.CheckErr(cmd.Execute())
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      config.New(),
		log:    zerolog.Nop(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "triectl",
		Short:         "Query a word list through a trie symbol table",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsDictionary(cmd) {
				return nil
			}
			return a.init(configPath)
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// flags
	fs := rootCmd.PersistentFlags()
	fs.StringVar(&configPath, "config", "", "Path to a YAML config file.")
	fs.String("dict", "-", "Word list to load; '-' reads standard input.")
	fs.String("wildcard", ".", "Single character matching any character in patterns.")
	fs.String("output", config.OutputPlain, "Output format: plain or table.")
	fs.String("log-level", "info", "Log level (trace, debug, info, warn, error).")
	fs.String("log-format", config.LogConsole, "Log format: console or json.")

	// bind flags to config
	cobra.CheckErr(config.BindFlags(a.v, fs))

	rootCmd.AddCommand(buildGetCmd(a))
	rootCmd.AddCommand(buildContainsCmd(a))
	rootCmd.AddCommand(buildLongestCmd(a))
	rootCmd.AddCommand(buildPrefixCmd(a))
	rootCmd.AddCommand(buildMatchCmd(a))
	rootCmd.AddCommand(buildKeysCmd(a))
	rootCmd.AddCommand(buildDeleteCmd(a))
	rootCmd.AddCommand(buildStatsCmd(a))

	return rootCmd
}

// needsDictionary reports whether cmd queries the trie. Help and shell
// completion commands (and their subcommands) do not.
func needsDictionary(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}

	return true
}

// init loads configuration, builds the logger and loads the dictionary.
func (a *app) init(configPath string) error {
	cfg, err := config.Load(a.v, configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(a.stderr, cfg.Log)
	if err != nil {
		return err
	}

	r, err := dict.Open(cfg.Dict, a.stdin)
	if err != nil {
		return err
	}
	defer r.Close()

	a.st = trie.New[int](trie.WithWildcard(cfg.WildcardRune()))
	stats, err := dict.Load(r, a.st, a.log.With().Str("dict", cfg.Dict).Logger())
	if err != nil {
		a.log.Error().Err(err).Str("dict", cfg.Dict).Msg("failed to load dictionary")
		return err
	}
	a.log.Info().Int("words", stats.Words).Int("keys", stats.Distinct).Msg("ready")

	return nil
}
