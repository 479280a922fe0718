package finmas

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecordType discriminates the JSONL ledger lines.
type RecordType string

const (
	RecMovement     RecordType = "movement"
	RecDistribution RecordType = "distribution"
	RecHolding      RecordType = "holding"
)

// movementLine is the wire shape of a movement record.
type movementLine struct {
	Record RecordType `json:"record"`
	Movement
}

// distributionLine is the wire shape of a distribution record.
type distributionLine struct {
	Record RecordType `json:"record"`
	Distribution
}

// holdingLine carries the optional per-holding metadata.
type holdingLine struct {
	Record  RecordType `json:"record"`
	Holding string     `json:"holding"`
	HoldingMeta
}

// DecodeLedger decodes a stream of JSONL data: one JSON object per line,
// discriminated by its "record" field. Lines that do not parse at all are
// an error; records that parse but fail validation are diverted to the
// ledger's skipped list by Append.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case RecMovement:
			var line movementLine
			if err := json.Unmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("invalid movement line %q: %w", string(lineBytes), err)
			}
			line.Movement.UnitPrice.cur = "BRL"
			ledger.Append(line.Movement)
		case RecDistribution:
			var line distributionLine
			if err := json.Unmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("invalid distribution line %q: %w", string(lineBytes), err)
			}
			line.Distribution.Gross.cur = "BRL"
			ledger.AppendDistribution(line.Distribution)
		case RecHolding:
			var line holdingLine
			if err := json.Unmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("invalid holding line %q: %w", string(lineBytes), err)
			}
			ledger.SetMeta(line.Holding, line.HoldingMeta)
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(lineBytes))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger stream: %w", err)
	}
	return ledger, nil
}

// EncodeMovement writes a movement as one JSONL line.
func EncodeMovement(w io.Writer, m Movement) error {
	return encodeLine(w, movementLine{Record: RecMovement, Movement: m})
}

// EncodeDistribution writes a distribution as one JSONL line.
func EncodeDistribution(w io.Writer, d Distribution) error {
	return encodeLine(w, distributionLine{Record: RecDistribution, Distribution: d})
}

// EncodeHoldingMeta writes holding metadata as one JSONL line.
func EncodeHoldingMeta(w io.Writer, holding string, meta HoldingMeta) error {
	return encodeLine(w, holdingLine{Record: RecHolding, Holding: holding, HoldingMeta: meta})
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
