package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibook-dev/minibook/internal/model"
)

func TestClassify_Defaults(t *testing.T) {
	c := DefaultClassifier()
	tests := []struct {
		name string
		want model.AccountType
	}{
		{"Cash", model.AccountTypeAsset},
		{"Bank BCA", model.AccountTypeAsset},
		{"Accounts Receivable", model.AccountTypeAsset},
		{"Piutang Usaha", model.AccountTypeAsset},
		{"Inventory", model.AccountTypeAsset},
		{"Persediaan Barang", model.AccountTypeAsset},
		{"Accounts Payable", model.AccountTypeLiability},
		{"Accounts Payable Insurance", model.AccountTypeLiability},
		{"Hutang Bank", model.AccountTypeAsset}, // "bank" group is evaluated first
		{"Revenue", model.AccountTypeRevenue},
		{"Sales Revenue", model.AccountTypeRevenue},
		{"Pendapatan Jasa", model.AccountTypeRevenue},
		{"Salary Expense", model.AccountTypeExpense},
		{"Cost of Goods Sold", model.AccountTypeExpense},
		{"COGS", model.AccountTypeExpense},
		{"Beban Gaji", model.AccountTypeExpense},
		{"Owner Capital", model.AccountTypeEquity},
		{"Prepaid Rent", model.AccountTypeEquity},
		{"", model.AccountTypeEquity},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.name), "Classify(%q)", tt.name)
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := DefaultClassifier()
	// Contains both a revenue and an expense keyword; revenue is checked first.
	assert.Equal(t, model.AccountTypeRevenue, c.Classify("Sales Expense Offset"))
	// Contains an asset and a liability keyword; asset is checked first.
	assert.Equal(t, model.AccountTypeAsset, c.Classify("Cash Payable"))
}

func TestClassify_Deterministic(t *testing.T) {
	c := DefaultClassifier()
	for i := 0; i < 100; i++ {
		assert.Equal(t, model.AccountTypeAsset, c.Classify("Cash"))
		assert.Equal(t, model.AccountTypeEquity, c.Classify("Owner Capital"))
	}
}

func TestNewClassifier_ExtraRulesFirst(t *testing.T) {
	c, err := NewClassifier(Rule{Keywords: []string{" Prepaid "}, Type: model.AccountTypeAsset})
	require.NoError(t, err)

	assert.Equal(t, model.AccountTypeAsset, c.Classify("Prepaid Rent"))
	assert.Equal(t, model.AccountTypeAsset, c.Classify("Prepaid Expense"), "extra rules outrank defaults")
	assert.Equal(t, model.AccountTypeLiability, c.Classify("Accounts Payable"))

	rules := c.Rules()
	require.Len(t, rules, len(DefaultRules())+1)
	assert.Equal(t, []string{"prepaid"}, rules[0].Keywords)
}

func TestNewClassifier_Invalid(t *testing.T) {
	_, err := NewClassifier(Rule{Keywords: []string{"x"}, Type: "contra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account type")

	_, err = NewClassifier(Rule{Keywords: []string{"  "}, Type: model.AccountTypeAsset})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no keywords")
}

func TestRules_ReturnsCopy(t *testing.T) {
	c := DefaultClassifier()
	rules := c.Rules()
	rules[0].Keywords[0] = "mutated"
	assert.Equal(t, model.AccountTypeAsset, c.Classify("Cash"))
}
