package annotate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// PrintSummary writes the per-image face counts as a table, in processing order.
func PrintSummary(w io.Writer, summary []Count) {
	fmt.Fprintln(w, "\n=== Detection Summary ===")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Image", "Faces detected"})
	for _, count := range summary {
		table.Append([]string{count.Image, strconv.Itoa(count.Faces)})
	}
	table.Render()
}
