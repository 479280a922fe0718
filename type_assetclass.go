package finmas

import "fmt"

// AssetClass is the tax-treatment bucket a holding falls into.
// Each class has its own rate structure (flat, progressive, or
// exemption-then-flat), see the regime table in tax.go.
type AssetClass int

const (
	// Unknown is the conservative default: taxed like a stock on disposals,
	// exempt on distributions.
	Unknown AssetClass = iota
	Stock
	RealEstateFund
	DepositaryReceipt
	ExchangeTradedFund
	FixedIncome
	Crypto
)

func (c AssetClass) String() string {
	switch c {
	case Stock:
		return "stock"
	case RealEstateFund:
		return "fii"
	case DepositaryReceipt:
		return "bdr"
	case ExchangeTradedFund:
		return "etf"
	case FixedIncome:
		return "fixed-income"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// Label returns the human readable name used in reports.
func (c AssetClass) Label() string {
	switch c {
	case Stock:
		return "Ação"
	case RealEstateFund:
		return "FII"
	case DepositaryReceipt:
		return "BDR"
	case ExchangeTradedFund:
		return "ETF"
	case FixedIncome:
		return "Renda Fixa"
	case Crypto:
		return "Cripto"
	default:
		return "Desconhecido"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch s {
	case "stock":
		return Stock, nil
	case "fii":
		return RealEstateFund, nil
	case "bdr":
		return DepositaryReceipt, nil
	case "etf":
		return ExchangeTradedFund, nil
	case "fixed-income":
		return FixedIncome, nil
	case "crypto":
		return Crypto, nil
	case "unknown":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("unknown asset class: %q", s)
	}
}

// AllAssetClasses lists every class in stable report order.
func AllAssetClasses() []AssetClass {
	return []AssetClass{Stock, RealEstateFund, DepositaryReceipt, ExchangeTradedFund, FixedIncome, Crypto, Unknown}
}
