// Package cli holds the rendering and wiring helpers shared by the
// commands.
package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintResult prints a green result line.
func PrintResult(text string) {
	color.Green(text)
}

// PrintError prints a red error line.
func PrintError(text string) {
	color.Red(text)
}

// RenderTable writes header and rows as an ASCII table on stdout.
func RenderTable(header []string, rows [][]string) {
	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)
	w.AppendHeader(toRow(header))
	for _, r := range rows {
		w.AppendRow(toRow(r))
	}
	w.Render()
}

func toRow(cells []string) table.Row {
	row := make(table.Row, 0, len(cells))
	for _, c := range cells {
		row = append(row, c)
	}
	return row
}
