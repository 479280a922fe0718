package renderer

import (
	"fmt"
	"strings"

	"github.com/korgloriws/finmas"
)

// AnnualMarkdown renders the yearly roll-up used as a filing aid.
func AnnualMarkdown(r *finmas.AnnualReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Annual Tax Summary %d\n\n", r.Year)

	if r.SkippedItems > 0 || r.UnresolvedBases > 0 {
		fmt.Fprintf(&b, "**Warning**: %d item(s) skipped, %d disposal(s) without a cost basis. Totals are a lower bound.\n\n",
			r.SkippedItems, r.UnresolvedBases)
	}

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Disposals | %d |\n", r.DisposalCount)
	fmt.Fprintf(&b, "| Distributions | %d |\n", r.DistributionCount)
	fmt.Fprintf(&b, "| Realized profit | %s |\n", r.RealizedProfit.SignedString())
	fmt.Fprintf(&b, "| Realized loss | %s |\n", r.RealizedLoss.SignedString())
	fmt.Fprintf(&b, "| Exempt profit | %s |\n", r.ExemptProfit.SignedString())
	fmt.Fprintf(&b, "| Disposal tax | %s |\n", amount(r.DisposalTax))
	fmt.Fprintf(&b, "| Distribution tax | %s |\n", amount(r.DistributionTax))
	fmt.Fprintf(&b, "| **Total tax** | **%s** |\n", amount(r.TotalTax))

	return b.String()
}
