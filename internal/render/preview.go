package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Preview renders the solved matrix as a human-readable table, one row
// per date and one column per staff id, the same way the teacher's CLI
// commands pair a machine-readable export with a console table. It is
// pure presentation: skipped entirely by the caller when the document
// is infeasible (doc.Matrix is empty in that case anyway).
func Preview(w io.Writer, doc Document) {
	if len(doc.Matrix) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	header := append([]string{"date"}, doc.PeopleOrder...)
	table.SetHeader(header)
	table.SetBorder(false)

	for _, row := range doc.Matrix {
		line := make([]string, 0, len(doc.PeopleOrder)+1)
		line = append(line, strconv.Itoa(row.Date))
		for _, id := range doc.PeopleOrder {
			shift := row.Shifts[id]
			if shift == "" {
				shift = "-"
			}
			line = append(line, shift)
		}
		table.Append(line)
	}
	table.Render()
}
