package book

import "github.com/minibook-dev/minibook/internal/model"

// SampleRaw returns the November 2025 demo transactions as raw rows.
func SampleRaw() []model.RawTransaction {
	return []model.RawTransaction{
		{Date: "2025-11-01", DebitAccount: "Cash", CreditAccount: "Revenue", Amount: "5000000", Description: "Penjualan jasa A"},
		{Date: "2025-11-05", DebitAccount: "Accounts Receivable", CreditAccount: "Revenue", Amount: "3000000", Description: "Penjualan kredit B"},
		{Date: "2025-11-10", DebitAccount: "Cost of Goods Sold", CreditAccount: "Inventory", Amount: "1200000", Description: "Pembelian bahan"},
		{Date: "2025-11-15", DebitAccount: "Salary Expense", CreditAccount: "Cash", Amount: "800000", Description: "Gaji November"},
		{Date: "2025-11-20", DebitAccount: "Cash", CreditAccount: "Accounts Receivable", Amount: "2000000", Description: "Penerimaan piutang"},
	}
}

// SampleTransactions returns the demo transactions, parsed.
func SampleTransactions() []model.Transaction {
	txns, err := ParseTransactions(SampleRaw())
	if err != nil {
		panic(err)
	}
	return txns
}
