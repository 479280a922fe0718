package renderer

import (
	"fmt"
	"strings"

	"github.com/korgloriws/finmas"
)

// TaxesMarkdown renders the per-disposal tax treatment. Exemption and
// non-taxability reasons appear inline next to the disposal they qualify,
// never in a separate appendix.
func TaxesMarkdown(a *finmas.Assessment) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Disposal Taxes\n\n")
	skippedBanner(&b, a.Skipped)

	if len(a.Records) == 0 {
		fmt.Fprintln(&b, "No disposals recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Holding | Class | Basis | Profit | Rate | Tax | Note |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|:---|")

	var total finmas.Money
	for _, r := range a.Records {
		d := r.Disposal
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			d.Date,
			d.Holding,
			d.Class,
			d.BasisSource,
			d.Profit.SignedString(),
			percent(r.Rate),
			amount(r.Tax),
			taxNote(r),
		)
		total = total.Add(r.Tax)
	}
	fmt.Fprintf(&b, "| | | | | | **%s** | **%s** | |\n", "Total", amount(total))

	return b.String()
}

// taxNote is the inline qualifier of one record: the stated reason when the
// record carries no tax, the day-trade marker otherwise.
func taxNote(r finmas.TaxRecord) string {
	if r.Reason != "" {
		return r.Reason
	}
	if r.Disposal.DayTrade {
		return "day-trade"
	}
	return ""
}

// skippedBanner warns that totals are a lower bound when ledger items were
// rejected on input.
func skippedBanner(b *strings.Builder, skipped []finmas.SkippedItem) {
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintf(b, "**Warning**: %d ledger item(s) were skipped, totals are a lower bound.\n\n", len(skipped))
	for _, s := range skipped {
		fmt.Fprintf(b, "- %s %s: %s\n", s.Date, s.Holding, s.Reason)
	}
	fmt.Fprintln(b)
}
