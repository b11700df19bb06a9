package report

import (
	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/errs"
	"github.com/minibook-dev/minibook/internal/model"
)

// Chart lists classified accounts per type in report order.
type Chart interface {
	ByType(t model.AccountType) []model.Account
}

// Statements aggregates natural-side balances by classification.
// Net income is folded into equity at report time; no closing entry is
// posted to the journal.
func Statements(chart Chart, balances BalanceSource) (model.IncomeStatement, model.BalanceSheet) {
	var is model.IncomeStatement
	var bs model.BalanceSheet

	is.Revenue, is.Revenues = section(chart, model.AccountTypeRevenue, balances)
	is.Expense, is.Expenses = section(chart, model.AccountTypeExpense, balances)
	is.NetIncome = is.Revenue.Sub(is.Expense)

	bs.Assets, bs.AssetLines = section(chart, model.AccountTypeAsset, balances)
	bs.Liabilities, bs.LiabilityLines = section(chart, model.AccountTypeLiability, balances)
	bs.Equity, bs.EquityLines = section(chart, model.AccountTypeEquity, balances)
	bs.NetIncome = is.NetIncome
	bs.Equity = bs.Equity.Add(is.NetIncome)
	return is, bs
}

func section(chart Chart, t model.AccountType, balances BalanceSource) (decimal.Decimal, []model.AccountAmount) {
	total := decimal.Zero
	var lines []model.AccountAmount
	for _, a := range chart.ByType(t) {
		amt := NaturalBalance(t, balances.Balance(a.Name))
		total = total.Add(amt)
		lines = append(lines, model.AccountAmount{Account: a.Name, Amount: amt})
	}
	return total, lines
}

// CheckBalanceSheet returns an *errs.ImbalanceError when
// assets - liabilities - equity differs from zero by more than tolerance.
func CheckBalanceSheet(bs model.BalanceSheet, tolerance decimal.Decimal) error {
	claims := bs.Liabilities.Add(bs.Equity)
	if bs.Assets.Sub(claims).Abs().GreaterThan(tolerance) {
		return &errs.ImbalanceError{Scope: "balance sheet", Debit: bs.Assets, Credit: claims}
	}
	return nil
}
