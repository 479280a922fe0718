package finmas

import (
	"strings"
	"testing"
)

const sampleLedger = `{"record":"holding","holding":"HGLG11","type":"fii"}
{"record":"movement","holding":"PETR4","direction":"buy","quantity":100,"unitPrice":30.5,"date":"2025-01-10"}

{"record":"movement","holding":"PETR4","direction":"sell","quantity":100,"unitPrice":35,"date":"2025-02-05"}
{"record":"distribution","holding":"HGLG11","gross":120,"date":"2025-02-15"}
`

func TestDecodeLedger(t *testing.T) {
	ledger, err := DecodeLedger(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	var movements []Movement
	for _, m := range ledger.Movements() {
		movements = append(movements, m)
	}
	if len(movements) != 2 {
		t.Fatalf("movements = %d, want 2", len(movements))
	}
	if got := movements[0]; got.Holding != "PETR4" || got.Direction != Buy || !got.Quantity.Equal(Q(100)) {
		t.Errorf("first movement = %+v", got)
	}
	// Decoded amounts carry the ledger's home currency.
	if got := movements[0].UnitPrice; got.Currency() != "BRL" || !got.Equal(BRL(30.5)) {
		t.Errorf("unit price = %s %s, want BRL 30.5", got, got.Currency())
	}

	var distributions []Distribution
	for _, d := range ledger.Distributions() {
		distributions = append(distributions, d)
	}
	if len(distributions) != 1 || !distributions[0].Gross.Equal(BRL(120)) {
		t.Errorf("distributions = %+v, want one of 120", distributions)
	}

	meta, ok := ledger.Meta("HGLG11")
	if !ok || meta.Type != "fii" {
		t.Errorf("Meta(HGLG11) = %+v, %v", meta, ok)
	}
	if len(ledger.Skipped()) != 0 {
		t.Errorf("skipped = %v, want none", ledger.Skipped())
	}
}

func TestDecodeLedgerBadLine(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("this is not json\n")); err == nil {
		t.Error("DecodeLedger() expected an error on a non-JSON line")
	}
	if _, err := DecodeLedger(strings.NewReader(`{"record":"teleport","holding":"X"}` + "\n")); err == nil {
		t.Error("DecodeLedger() expected an error on an unknown record type")
	}
}

func TestDecodeLedgerSkipsInvalidRecords(t *testing.T) {
	// Parses fine but fails validation: negative quantity.
	line := `{"record":"movement","holding":"PETR4","direction":"buy","quantity":-5,"unitPrice":10,"date":"2025-01-10"}` + "\n"

	ledger, err := DecodeLedger(strings.NewReader(line))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v, validation failures must not abort", err)
	}
	if got := len(ledger.Skipped()); got != 1 {
		t.Fatalf("skipped = %d, want 1", got)
	}
	if s := ledger.Skipped()[0]; s.Holding != "PETR4" || s.Reason == "" {
		t.Errorf("skipped item = %+v, want holding and reason", s)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var b strings.Builder
	m := buy("2025-01-10", "PETR4", 100, 30.5)
	d := NewDistribution(day("2025-02-15"), "HGLG11", BRL(120))

	if err := EncodeMovement(&b, m); err != nil {
		t.Fatalf("EncodeMovement() error = %v", err)
	}
	if err := EncodeDistribution(&b, d); err != nil {
		t.Fatalf("EncodeDistribution() error = %v", err)
	}
	if err := EncodeHoldingMeta(&b, "HGLG11", HoldingMeta{Type: "fii"}); err != nil {
		t.Fatalf("EncodeHoldingMeta() error = %v", err)
	}

	ledger, err := DecodeLedger(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v on:\n%s", err, b.String())
	}

	for _, got := range ledger.Movements() {
		if got.Holding != m.Holding || !got.UnitPrice.Equal(m.UnitPrice) || got.Date != m.Date {
			t.Errorf("movement round trip = %+v, want %+v", got, m)
		}
	}
	for _, got := range ledger.Distributions() {
		if !got.Gross.Equal(d.Gross) {
			t.Errorf("distribution round trip = %+v, want %+v", got, d)
		}
	}
	if meta, ok := ledger.Meta("HGLG11"); !ok || meta.Type != "fii" {
		t.Errorf("meta round trip = %+v, %v", meta, ok)
	}
}
