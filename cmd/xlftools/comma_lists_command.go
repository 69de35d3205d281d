package main

import (
	"github.com/spf13/cobra"

	"xlftools/internal/config"
	"xlftools/internal/detect"
)

func newCommaListsCommand(ctx *commandContext) *cobra.Command {
	var includeState bool

	cmd := &cobra.Command{
		Use:   "comma-lists <input> [output]",
		Short: "Find names whose comma-separated item count differs between source and target",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			doc, err := ctx.parseInput(cmd, input)
			if err != nil {
				return err
			}
			report := detect.CommaLists(doc.Units(), ctx.loggerValue())

			var explicit string
			if len(args) > 1 {
				explicit = args[1]
			}
			output, err := ctx.outputPath(config.OutputCommaLists, explicit, reportName(input, "_comma_lists.tsv"))
			if err != nil {
				return err
			}
			if err := ctx.writeReport(cmd, output, detect.RenderCommaLists(report, includeState)); err != nil {
				return err
			}

			status := newStatusPrinter(cmd)
			status.line("Extracted", statusOK, "%d entries to %s", report.Total(), output)
			status.line("Increased", statusInfo, "%d", len(report.Increased))
			status.line("Decreased", statusInfo, "%d", len(report.Decreased))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&includeState, "include-state", "s", false, "Add a Target State column")
	return cmd
}
