package main

import (
	"github.com/spf13/cobra"

	"xlftools/internal/compare"
	"xlftools/internal/config"
	"xlftools/internal/textutil"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var (
		names, descs bool
		includeState bool
	)

	cmd := &cobra.Command{
		Use:   "compare <file1> <file2> [output]",
		Short: "Report name or description translations that changed between two files",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := compare.Options{Field: compare.Names, IncludeState: includeState}
			if descs {
				opts.Field = compare.Descriptions
			}

			status := newStatusPrinter(cmd)
			file1, file2 := args[0], args[1]
			before, err := ctx.parseInput(cmd, file1)
			if err != nil {
				return err
			}
			after, err := ctx.parseInput(cmd, file2)
			if err != nil {
				return err
			}

			rows, err := compare.Compare(before, after, opts, ctx.loggerValue())
			if err != nil {
				return err
			}

			var explicit string
			if len(args) > 2 {
				explicit = args[2]
			}
			name := textutil.BaseName(file1) + "_vs_" + textutil.BaseName(file2) + opts.Field.Suffix()
			output, err := ctx.outputPath(config.OutputComparisons, explicit, name)
			if err != nil {
				return err
			}
			if err := ctx.writeReport(cmd, output, compare.Render(rows, opts)); err != nil {
				return err
			}

			status.line("Changed", statusOK, "%d entries", len(rows))
			status.line("Output", statusOK, "%s", output)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&names, "names", "n", false, "Compare _Name translations")
	cmd.Flags().BoolVarP(&descs, "descriptions", "d", false, "Compare _Desc_0 translations")
	cmd.Flags().BoolVarP(&includeState, "include-state", "s", false, "Also report target state changes")
	cmd.MarkFlagsMutuallyExclusive("names", "descriptions")
	cmd.MarkFlagsOneRequired("names", "descriptions")
	return cmd
}
