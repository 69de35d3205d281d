package main

import (
	"github.com/spf13/cobra"

	"xlftools/internal/config"
	"xlftools/internal/detect"
	langutil "xlftools/internal/language"
	"xlftools/internal/logging"
)

func newIdenticalCommand(ctx *commandContext) *cobra.Command {
	var detectLanguage bool

	cmd := &cobra.Command{
		Use:   "identical <input> [output]",
		Short: "Find translations that repeat their source text",
		Long: `Flag trans-units whose target repeats the source. Approved translatable
units are flagged when any comma-separated piece of the target occurs in the
source; all other units are flagged when target and source are identical.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			doc, err := ctx.parseInput(cmd, input)
			if err != nil {
				return err
			}
			logger := ctx.loggerValue()
			if tag, ok := doc.TargetLanguage(); ok {
				logger.Debug("target language", logging.String("language", langutil.Label(tag)))
			}

			status := newStatusPrinter(cmd)
			findings := detect.Identical(doc.Units(), detect.IdenticalOptions{DetectLanguage: detectLanguage}, logger)
			if len(findings) == 0 {
				status.line("Result", statusInfo, "No matching trans-units found.")
				return nil
			}

			var explicit string
			if len(args) > 1 {
				explicit = args[1]
			}
			output, err := ctx.outputPath(config.OutputIdentical, explicit, reportName(input, "_analysis.txt"))
			if err != nil {
				return err
			}
			if err := ctx.writeReport(cmd, output, detect.RenderIdentical(findings)); err != nil {
				return err
			}

			status.line("Found", statusWarn, "%d trans-unit(s)", len(findings))
			status.line("Output", statusOK, "%s", output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&detectLanguage, "detect-language", false, "Annotate each finding with the language detected in its target")
	return cmd
}
