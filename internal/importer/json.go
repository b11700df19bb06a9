package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minibook-dev/minibook/internal/model"
)

// JSONParser reads either a bare array of transactions or an object with a
// "transactions" array. Amounts may be JSON numbers or strings.
type JSONParser struct{}

// Format returns the parser name.
func (p *JSONParser) Format() string { return "json" }

// JSONTransaction is the wire shape of one transaction.
type JSONTransaction struct {
	Date          string     `json:"date"`
	AccountDebit  string     `json:"account_debit"`
	AccountCredit string     `json:"account_credit"`
	Amount        FlexString `json:"amount"`
	Description   string     `json:"description,omitempty"`
}

// Raw converts to the engine's unparsed row.
func (t JSONTransaction) Raw() model.RawTransaction {
	return model.RawTransaction{
		Date:          t.Date,
		DebitAccount:  t.AccountDebit,
		CreditAccount: t.AccountCredit,
		Amount:        string(t.Amount),
		Description:   t.Description,
	}
}

// FlexString accepts a JSON string or number and keeps its literal text,
// so 5000000 and "5000000" decode the same without float rounding. Any
// other literal (true, an object) is kept verbatim for the engine to
// reject with its row number.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	default:
		*f = FlexString(b)
	}
	return nil
}

// DecodeTransactions decodes a bare array or {"transactions": [...]}.
func DecodeTransactions(data []byte) ([]JSONTransaction, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	var txns []JSONTransaction
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &txns); err != nil {
			return nil, fmt.Errorf("decoding transactions: %w", err)
		}
		return txns, nil
	}
	var envelope struct {
		Transactions []JSONTransaction `json:"transactions"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decoding transactions: %w", err)
	}
	return envelope.Transactions, nil
}

// Parse reads JSON transactions.
func (p *JSONParser) Parse(r io.Reader) ([]model.RawTransaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	txns, err := DecodeTransactions(data)
	if err != nil {
		return nil, err
	}
	return ToRaw(txns), nil
}

// ToRaw converts decoded wire rows into raw rows.
func ToRaw(txns []JSONTransaction) []model.RawTransaction {
	if txns == nil {
		return nil
	}
	raw := make([]model.RawTransaction, len(txns))
	for i, t := range txns {
		raw[i] = t.Raw()
	}
	return raw
}
