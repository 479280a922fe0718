package finmas

import (
	"context"
	"log"
	"strings"
	"unicode"
)

// QuoteTypeLookup resolves a ticker to an upstream quote-type string
// (e.g. "EQUITY", "ETF", "CRYPTOCURRENCY"). Implementations are
// best-effort: returning an empty string or an error both mean "no data"
// and trigger the next classification fallback tier.
type QuoteTypeLookup interface {
	QuoteType(ctx context.Context, ticker string) (string, error)
}

// Classifier maps a holding to its tax-relevant asset class.
//
// Resolution order, first match wins: explicit type keywords, interest-rate
// indexer, external quote-type lookup, ticker-shape heuristic, Unknown.
// Classification is deterministic for given inputs and repeated calls are
// idempotent.
type Classifier struct {
	lookup QuoteTypeLookup // optional
	cache  map[string]string
}

// NewClassifier creates a classifier. The lookup may be nil.
func NewClassifier(lookup QuoteTypeLookup) *Classifier {
	return &Classifier{lookup: lookup, cache: make(map[string]string)}
}

// keyword sets matched against the explicit type tag, lowercased.
var classKeywords = []struct {
	class    AssetClass
	keywords []string
}{
	{RealEstateFund, []string{"fii", "fundo imobiliário", "fundo imobiliario", "real estate"}},
	{DepositaryReceipt, []string{"bdr", "depositary"}},
	{ExchangeTradedFund, []string{"etf", "índice", "indice"}},
	{FixedIncome, []string{"renda fixa", "tesouro", "cdb", "lci", "lca", "debênture", "debenture", "fixed income"}},
	{Crypto, []string{"cripto", "crypto", "criptomoeda"}},
	{Stock, []string{"ação", "acao", "ações", "acoes", "stock", "equity"}},
}

// indexer families that imply a fixed-income title.
var fixedIncomeIndexers = []string{"cdi", "ipca", "selic", "prefixado", "pré", "pre"}

// reserved ticker suffixes that disqualify the ends-in-digit stock heuristic.
var reservedSuffixes = []string{"11", "11B", "12", "13"} // fund/unit suffixes

// Prefetch resolves the external lookup for every holding whose class cannot
// be derived locally, one bounded call per unresolved holding. It is run
// ahead of the evaluation pass so lookups never interleave with lot
// consumption. Failures degrade to the ticker-shape heuristic.
func (c *Classifier) Prefetch(ctx context.Context, ledger *Ledger) {
	if c.lookup == nil {
		return
	}
	for holding := range ledger.Holdings() {
		meta, _ := ledger.Meta(holding)
		if classFromType(meta.Type) != Unknown || isFixedIncomeIndexer(meta.Indexer) {
			continue
		}
		if _, done := c.cache[holding]; done {
			continue
		}
		qt, err := c.lookup.QuoteType(ctx, holding)
		if err != nil {
			log.Printf("quote-type lookup failed for %s: %v", holding, err)
			qt = ""
		}
		c.cache[holding] = qt
	}
}

// Classify resolves the asset class for a holding.
func (c *Classifier) Classify(holding string, meta HoldingMeta) AssetClass {
	// 1. explicit type tag.
	if class := classFromType(meta.Type); class != Unknown {
		return class
	}
	// 2. interest-rate indexer.
	if isFixedIncomeIndexer(meta.Indexer) {
		return FixedIncome
	}
	// 3. external quote-type metadata, resolved by Prefetch.
	if class := classFromQuoteType(c.cache[holding]); class != Unknown {
		return class
	}
	// 4. ticker-shape heuristic.
	if looksLikeStockTicker(holding) {
		return Stock
	}
	return Unknown
}

func classFromType(explicitType string) AssetClass {
	t := strings.ToLower(strings.TrimSpace(explicitType))
	if t == "" {
		return Unknown
	}
	for _, set := range classKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(t, kw) {
				return set.class
			}
		}
	}
	return Unknown
}

func isFixedIncomeIndexer(indexer string) bool {
	ix := strings.ToLower(strings.TrimSpace(indexer))
	if ix == "" {
		return false
	}
	for _, family := range fixedIncomeIndexers {
		if strings.Contains(ix, family) {
			return true
		}
	}
	return false
}

func classFromQuoteType(quoteType string) AssetClass {
	switch strings.ToUpper(strings.TrimSpace(quoteType)) {
	case "EQUITY":
		return Stock
	case "ETF":
		return ExchangeTradedFund
	case "CRYPTOCURRENCY":
		return Crypto
	case "MUTUALFUND", "FUND":
		return RealEstateFund
	default:
		return Unknown
	}
}

// looksLikeStockTicker reports whether the ticker ends in a digit and not in
// a reserved fund/unit suffix, the shape of a listed share ticker.
func looksLikeStockTicker(ticker string) bool {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return false
	}
	last := rune(t[len(t)-1])
	if !unicode.IsDigit(last) {
		return false
	}
	for _, suffix := range reservedSuffixes {
		if strings.HasSuffix(t, suffix) {
			return false
		}
	}
	return true
}
