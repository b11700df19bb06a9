// Package report rolls final ledger balances up into a trial balance and
// summary financial statements.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/errs"
	"github.com/minibook-dev/minibook/internal/model"
)

// DefaultTolerance is the absolute difference tolerated by the balance checks.
var DefaultTolerance = decimal.New(1, -6)

// BalanceSource yields the signed final balance of an account
// (positive = net debit, negative = net credit).
type BalanceSource interface {
	Balance(name string) decimal.Decimal
}

// NaturalBalance re-signs a ledger balance so that a normal balance is
// positive: debit-normal types keep the sign, credit-normal types flip it.
func NaturalBalance(t model.AccountType, balance decimal.Decimal) decimal.Decimal {
	if t.NormalSide() == model.SideDebit {
		return balance
	}
	return balance.Neg()
}

// TrialBalance expresses every account's final balance on its natural side.
// An account carrying an abnormal balance is reported on the opposite side
// rather than hidden.
func TrialBalance(accounts []model.Account, balances BalanceSource) []model.TrialBalanceRow {
	rows := make([]model.TrialBalanceRow, 0, len(accounts))
	for _, a := range accounts {
		row := model.TrialBalanceRow{
			Account: a.Name,
			Type:    a.Type,
			Debit:   decimal.Zero,
			Credit:  decimal.Zero,
		}
		nat := NaturalBalance(a.Type, balances.Balance(a.Name))
		side := a.Type.NormalSide()
		if nat.IsNegative() {
			side = opposite(side)
			nat = nat.Abs()
		}
		if side == model.SideDebit {
			row.Debit = nat
		} else {
			row.Credit = nat
		}
		rows = append(rows, row)
	}
	return rows
}

func opposite(s model.Side) model.Side {
	if s == model.SideDebit {
		return model.SideCredit
	}
	return model.SideDebit
}

// Totals sums the debit and credit columns of a trial balance.
func Totals(rows []model.TrialBalanceRow) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, r := range rows {
		debit = debit.Add(r.Debit)
		credit = credit.Add(r.Credit)
	}
	return debit, credit
}

// CheckBalanced returns an *errs.ImbalanceError when the columns differ by
// more than tolerance.
func CheckBalanced(rows []model.TrialBalanceRow, tolerance decimal.Decimal) error {
	debit, credit := Totals(rows)
	if debit.Sub(credit).Abs().GreaterThan(tolerance) {
		return &errs.ImbalanceError{Scope: "trial balance", Debit: debit, Credit: credit}
	}
	return nil
}
