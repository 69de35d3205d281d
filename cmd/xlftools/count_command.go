package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"xlftools/internal/census"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "count <input>",
		Short: "Count _Name and _Desc_0 units under the _Poss group by target state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			doc, err := ctx.parseInput(cmd, input)
			if err != nil {
				return err
			}
			report, err := census.Count(doc, ctx.loggerValue())
			if err != nil {
				if errors.Is(err, census.ErrNoPossGroup) {
					return fmt.Errorf("%s: %w", input, err)
				}
				return err
			}

			if jsonOutput {
				return writeCensusJSON(cmd.OutOrStdout(), report)
			}
			printCensus(cmd, input, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printCensus(cmd *cobra.Command, input string, report census.Report) {
	out := cmd.OutOrStdout()
	status := newStatusPrinter(cmd)
	status.line("Input", statusInfo, "%s", input)
	status.line("Children", statusInfo, "%d %s child group(s)", len(report.Children), report.PossGroup)
	fmt.Fprintln(out)

	for _, child := range report.Children {
		status.section(child.ID)
		if child.Empty() {
			fmt.Fprintln(out, "  No _Name or _Desc_0 trans-units found")
			fmt.Fprintln(out)
			continue
		}
		fmt.Fprintln(out, renderCensusTable(child))
		fmt.Fprintln(out)
	}

	status.section("Totals across all children")
	if report.Totals.Empty() {
		fmt.Fprintln(out, "  No _Name or _Desc_0 trans-units found")
		return
	}
	fmt.Fprintln(out, renderCensusTable(report.Totals))
	fmt.Fprintln(out)
	status.line("Grand total", statusOK, "%d trans-units across all children", report.GrandTotal)
}

// writeCensusJSON prints the report as indented JSON without HTML escaping.
func writeCensusJSON(w io.Writer, report census.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}
