package renderer

import (
	"fmt"
	"strings"

	"github.com/korgloriws/finmas"
)

// ClassesMarkdown renders the resolved asset class of every holding, so a
// wrong guess can be spotted and fixed with an explicit type tag.
func ClassesMarkdown(ledger *finmas.Ledger, classifier *finmas.Classifier) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Holding Classes\n\n")
	fmt.Fprintln(&b, "| Holding | Class | |")
	fmt.Fprintln(&b, "|:---|:---|:---|")

	for holding := range ledger.Holdings() {
		meta, _ := ledger.Meta(holding)
		class := classifier.Classify(holding, meta)
		fmt.Fprintf(&b, "| %s | %s | %s |\n", holding, class, class.Label())
	}

	return b.String()
}
