package dispatcher

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

const modifiedDateLayout = "2006-01-02 15:04:05"

// renderTable draws a bordered table and returns it without the final newline.
func renderTable(header []string, rows [][]string) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(true)
	alignments := make([]int, len(header))
	for i := range alignments {
		alignments[i] = tablewriter.ALIGN_LEFT
	}
	table.SetColumnAlignment(alignments)
	table.AppendBulk(rows)
	table.Render()
	return strings.TrimRight(sb.String(), "\n")
}
