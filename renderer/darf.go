package renderer

import (
	"fmt"
	"strings"

	"github.com/korgloriws/finmas"
)

// ObligationsMarkdown renders the DARF payment schedule. Statuses are
// derived against the given reference date, so the same assessment renders
// differently as deadlines approach.
func ObligationsMarkdown(obligations []finmas.TaxObligation, today finmas.Date) string {
	var b strings.Builder

	fmt.Fprint(&b, "# DARF Obligations\n\n")

	if len(obligations) == 0 {
		fmt.Fprintln(&b, "No tax due. Nothing to pay.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Due Date | Period | Disposals | Total | Status |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|")

	var total finmas.Money
	for _, o := range obligations {
		fmt.Fprintf(&b, "| %s | %04d-%02d | %d | %s | %s |\n",
			o.DueDate,
			o.Year, o.Month,
			len(o.Records),
			o.Total,
			o.Status(today),
		)
		total = total.Add(o.Total)
	}
	fmt.Fprintf(&b, "| | | | **%s** | |\n", total)

	return b.String()
}
