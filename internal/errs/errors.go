package errs

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error kinds surfaced by a derivation.
var (
	// ErrMalformedTransaction marks an input row that cannot be booked.
	ErrMalformedTransaction = errors.New("malformed_transaction")
	// ErrImbalance marks total debits != total credits after construction.
	// It always indicates an engine defect, never bad input.
	ErrImbalance = errors.New("imbalance_detected")
	// ErrInvariant marks a journal invariant violation other than balance.
	ErrInvariant = errors.New("invariant_violation")
	// ErrUnknownAccount marks a query for an account no transaction touched.
	ErrUnknownAccount = errors.New("unknown_account")
)

// MalformedError names the offending input row (1-based) and field.
type MalformedError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Reason)
	}
	return fmt.Sprintf("row %d: %s %q: %s", e.Row, e.Field, e.Value, e.Reason)
}

func (e *MalformedError) Unwrap() error { return ErrMalformedTransaction }

// ImbalanceError reports the totals that failed to agree.
type ImbalanceError struct {
	Scope  string // "journal", "trial balance", "balance sheet"
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

func (e *ImbalanceError) Error() string {
	return fmt.Sprintf("%s out of balance: %s != %s (difference %s)",
		e.Scope, e.Debit.String(), e.Credit.String(), e.Debit.Sub(e.Credit).Abs().String())
}

func (e *ImbalanceError) Unwrap() error { return ErrImbalance }

// Kind returns the short name of the error kind carried by err, or "" if none.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrMalformedTransaction):
		return ErrMalformedTransaction.Error()
	case errors.Is(err, ErrImbalance):
		return ErrImbalance.Error()
	case errors.Is(err, ErrInvariant):
		return ErrInvariant.Error()
	case errors.Is(err, ErrUnknownAccount):
		return ErrUnknownAccount.Error()
	default:
		return ""
	}
}
