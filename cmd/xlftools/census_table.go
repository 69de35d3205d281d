package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"xlftools/internal/census"
)

var censusHeader = table.Row{"Units", "State", "Count", "Share"}

// renderCensusTable lays out one section as a block per unit kind. The kind
// label appears on the first state row only and each block ends with its
// total. Kinds without units are left out.
func renderCensusTable(section census.Section) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(censusHeader)

	blocks := []struct {
		kind  string
		tally census.Tally
	}{
		{"_Name", section.Names},
		{"_Desc_0", section.Descriptions},
	}
	written := 0
	for _, b := range blocks {
		if b.tally.Total == 0 {
			continue
		}
		if written > 0 {
			tw.AppendSeparator()
		}
		written++
		for i, sc := range b.tally.States {
			kind := ""
			if i == 0 {
				kind = b.kind
			}
			tw.AppendRow(table.Row{kind, sc.State, sc.Count, formatShare(sc.Percent)})
		}
		tw.AppendRow(table.Row{"", "total", b.tally.Total, formatShare(100)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	return tw.Render()
}

func formatShare(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}
