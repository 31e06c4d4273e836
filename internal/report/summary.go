package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/vk/volsweep/internal/model"
)

// WriteSummary prints the table as aligned columns with a leading row
// index, the way the rows are echoed to the console after each sweep.
func WriteSummary(w io.Writer, table *model.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(Columns, "\t"))
	for i, r := range table.Rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", strconv.Itoa(i), strings.Join(record(r), "\t"))
	}
	if table.Len() == 0 {
		fmt.Fprintf(tw, "(no rows for skip mode %d)\t\n", int(table.SkipMode))
	}
	return tw.Flush()
}
