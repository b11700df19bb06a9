package accounts

import "github.com/minibook-dev/minibook/internal/model"

// FallbackType is assigned to any name no rule matches.
const FallbackType = model.AccountTypeEquity

// DefaultRules returns the built-in keyword table in priority order.
// Indonesian synonyms sit alongside the English keywords of each group.
func DefaultRules() []Rule {
	return []Rule{
		{Keywords: []string{"cash", "bank", "receivable", "piutang"}, Type: model.AccountTypeAsset},
		{Keywords: []string{"inventory", "persediaan"}, Type: model.AccountTypeAsset},
		{Keywords: []string{"payable", "hutang"}, Type: model.AccountTypeLiability},
		{Keywords: []string{"revenue", "sales", "pendapatan"}, Type: model.AccountTypeRevenue},
		{Keywords: []string{"expense", "cost", "beban", "salary", "gaji", "cogs"}, Type: model.AccountTypeExpense},
	}
}
