package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"xlftools/internal/categorize"
	"xlftools/internal/config"
)

func newSortCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <input> <col1> <col2> [output]",
		Short: "Interactively sort comparison rows into groups",
		Long: `Walk every row of a comparison report and tag it with one or more groups.
col1 and col2 are the 1-based columns highlighted in each row display.

Type one or more group keys per row (e.g. "14" or "2q"). A backtick creates a
new group bound to the next free key of e r t y u i o p [ ] \.
Press Enter twice to end early and save the rows sorted so far.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			col1, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("col1: %w", err)
			}
			col2, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("col2: %w", err)
			}

			tbl, err := readSortInput(input)
			if err != nil {
				return err
			}
			if err := tbl.ValidateColumns(col1, col2); err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			groups, order := cfg.GroupKeys()
			opts := categorize.Options{Col1: col1, Col2: col2}
			for _, key := range order {
				opts.Groups = append(opts.Groups, categorize.Group{Key: key, Name: groups[key]})
			}

			var explicit string
			if len(args) > 3 {
				explicit = args[3]
			}
			output, err := ctx.outputPath(config.OutputSorted, explicit, reportName(input, "_sorted.tsv"))
			if err != nil {
				return err
			}

			status := newStatusPrinter(cmd)
			status.line("Input", statusInfo, "%s", input)
			res, err := categorize.Run(commandCtx(cmd), tbl, opts, cmd.InOrStdin(), cmd.OutOrStdout(), ctx.loggerValue())
			if err != nil {
				if errors.Is(err, categorize.ErrCancelled) {
					fmt.Fprintln(cmd.OutOrStdout())
					status.line("Cancelled", statusWarn, "Operation cancelled by user.")
					return nil
				}
				return err
			}

			if err := ctx.writeReport(cmd, output, categorize.Render(res)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout())
			status.line("Processed", statusOK, "%d of %d rows", len(res.Rows), res.Total)
			status.line("Output", statusOK, "%s", output)
			status.line("Groups used", statusInfo, "%d", len(res.Used))
			for _, name := range res.Used {
				fmt.Fprintf(cmd.OutOrStdout(), "    - %s: %d rows\n", name, res.Count(name))
			}
			return nil
		},
	}
	return cmd
}

func readSortInput(path string) (categorize.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return categorize.Table{}, inputNotFound(path)
		}
		return categorize.Table{}, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return categorize.ReadTable(file)
}
