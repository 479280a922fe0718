package renderer

import (
	"fmt"
	"strings"

	"github.com/korgloriws/finmas"
)

// DividendsMarkdown renders the tax treatment of income distributions.
func DividendsMarkdown(records []finmas.DistributionTaxRecord) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Distribution Taxes\n\n")

	if len(records) == 0 {
		fmt.Fprintln(&b, "No distributions recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Holding | Class | Gross | Rate | Tax | Net |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|")

	var totalTax finmas.Money
	for _, r := range records {
		d := r.Distribution
		rate := percent(r.Rate)
		if r.Exempt {
			rate = "exempt"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			d.Date,
			d.Holding,
			r.Class,
			d.Gross,
			rate,
			amount(r.Tax),
			r.Net,
		)
		totalTax = totalTax.Add(r.Tax)
	}
	fmt.Fprintf(&b, "| | | | | **%s** | **%s** | |\n", "Total", amount(totalTax))

	return b.String()
}
