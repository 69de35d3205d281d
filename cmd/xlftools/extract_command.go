package main

import (
	"github.com/spf13/cobra"

	"xlftools/internal/config"
	"xlftools/internal/extract"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var (
		names, namesDescs, descs, descsNames, questions bool
	)

	cmd := &cobra.Command{
		Use:   "extract <input> [output]",
		Short: "Extract names, descriptions, or questions from each semantic domain",
		Long: `Extract (source, target) pairs of one trans-unit category from every
semantic-domain group of an XLF download. Output is tab-separated without a
header; the first column is the domain abbreviation.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := extract.Names
			switch {
			case namesDescs:
				mode = extract.NamesWithDescriptions
			case descs:
				mode = extract.Descriptions
			case descsNames:
				mode = extract.DescriptionsWithNames
			case questions:
				mode = extract.Questions
			}

			input := args[0]
			doc, err := ctx.parseInput(cmd, input)
			if err != nil {
				return err
			}
			result, err := extract.Extract(doc, mode, ctx.loggerValue())
			if err != nil {
				return err
			}

			var explicit string
			if len(args) > 1 {
				explicit = args[1]
			}
			output, err := ctx.outputPath(config.OutputExtracts, explicit, reportName(input, mode.Suffix()))
			if err != nil {
				return err
			}
			if err := ctx.writeReport(cmd, output, extract.Render(result.Rows)); err != nil {
				return err
			}

			status := newStatusPrinter(cmd)
			status.line("Extracted", statusOK, "%d entries to %s", len(result.Rows), output)
			if n := len(result.Missing); n > 0 {
				status.line("Missing", statusWarn, "%d group(s) were missing the desired element", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&names, "names", "n", false, "Extract _Name units")
	cmd.Flags().BoolVarP(&namesDescs, "names-with-descriptions", "N", false, "Extract _Name units with the description source")
	cmd.Flags().BoolVarP(&descs, "descriptions", "d", false, "Extract _Desc_0 units")
	cmd.Flags().BoolVarP(&descsNames, "descriptions-with-names", "D", false, "Extract _Desc_0 units with the name source")
	cmd.Flags().BoolVarP(&questions, "questions", "q", false, "Extract _Qs_<n>_Q units")
	cmd.MarkFlagsMutuallyExclusive("names", "names-with-descriptions", "descriptions", "descriptions-with-names", "questions")
	cmd.MarkFlagsOneRequired("names", "names-with-descriptions", "descriptions", "descriptions-with-names", "questions")
	return cmd
}
