package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AlexKokoz/Algs4/internal/config"
)

func buildGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value (word position) stored under KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val, ok, err := a.st.Get(args[0])
			if err != nil {
				return err
			}
			if !ok {
				a.log.Debug().Str("key", args[0]).Msg("key not found")
				return a.printPairs(nil)
			}
			return a.printPairs([]pair{{key: args[0], val: val}})
		},
	}
}

func buildContainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contains KEY",
		Short: "Report whether KEY is stored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.st.Contains(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, ok)
			return err
		},
	}
}

func buildLongestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "longest QUERY",
		Short: "Print the longest stored key that is a prefix of QUERY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, ok, err := a.st.LongestPrefixOf(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return a.printPairs(nil)
			}
			val, _, err := a.st.Get(prefix)
			if err != nil {
				return err
			}
			return a.printPairs([]pair{{key: prefix, val: val}})
		},
	}
}

func buildPrefixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "prefix PREFIX",
		Aliases: []string{"keys-with-prefix"},
		Short:   "List stored keys starting with PREFIX",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printKeys(a.st.KeysWithPrefix(args[0]))
		},
	}
}

func buildMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "match PATTERN",
		Aliases: []string{"keys-that-match"},
		Short:   "List stored keys matching PATTERN; the wildcard matches any one character",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printKeys(a.st.KeysThatMatch(args[0]))
		},
	}
}

func buildKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every stored key with its value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pairs []pair
			for k, v := range a.st.All() {
				pairs = append(pairs, pair{key: k, val: v})
			}
			return a.printPairs(pairs)
		},
	}
}

func buildDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY...",
		Short: "Delete keys, then print the remaining keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range args {
				if err := a.st.Delete(k); err != nil {
					return err
				}
			}
			if err := a.st.CheckInvariants(); err != nil {
				return err
			}
			a.log.Debug().Strs("keys", args).Int("size", a.st.Size()).Msg("deleted")
			return a.printKeys(a.st.Keys())
		},
	}
}

func buildStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the number of stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Output == config.OutputTable {
				table := newTablePrinter(a.stdout, []string{"size", "empty"})
				table.Append([]string{strconv.Itoa(a.st.Size()), strconv.FormatBool(a.st.IsEmpty())})
				table.Render()
				return nil
			}
			_, err := fmt.Fprintf(a.stdout, "size=%d empty=%t\n", a.st.Size(), a.st.IsEmpty())
			return err
		},
	}
}
