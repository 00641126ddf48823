package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/AlexKokoz/Algs4/internal/config"
)

type pair struct {
	key string
	val int
}

// newTablePrinter returns a borderless, left-aligned table with header.
func newTablePrinter(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")

	return table
}

// printKeys prints keys one per line, or as a KEY/VALUE table.
func (a *app) printKeys(keys []string) error {
	pairs := make([]pair, 0, len(keys))
	for _, k := range keys {
		v, _, err := a.st.Get(k)
		if err != nil {
			return err
		}
		pairs = append(pairs, pair{key: k, val: v})
	}
	if a.cfg.Output == config.OutputTable {
		return a.printPairs(pairs)
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintln(a.stdout, p.key); err != nil {
			return err
		}
	}

	return nil
}

// printPairs prints "key value" lines, or a KEY/VALUE table.
// An empty result prints nothing in plain mode.
func (a *app) printPairs(pairs []pair) error {
	if a.cfg.Output == config.OutputTable {
		table := newTablePrinter(a.stdout, []string{"key", "value"})
		for _, p := range pairs {
			table.Append([]string{strconv.Quote(p.key), strconv.Itoa(p.val)})
		}
		table.Render()
		return nil
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(a.stdout, "%s %d\n", p.key, p.val); err != nil {
			return err
		}
	}

	return nil
}
