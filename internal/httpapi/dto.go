package httpapi

import (
	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/book"
	"github.com/minibook-dev/minibook/internal/model"
	"github.com/minibook-dev/minibook/internal/report"
)

const dateFormat = "2006-01-02"

type accountDTO struct {
	Name       string `json:"name"`
	Type       string `json:"classification"`
	NormalSide string `json:"normal_side"`
}

type journalLineDTO struct {
	EntryID     string          `json:"entry_id"`
	Date        string          `json:"date"`
	Account     string          `json:"account"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

type ledgerEntryDTO struct {
	EntryID     string          `json:"entry_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

type trialBalanceRowDTO struct {
	Account string          `json:"account"`
	Type    string          `json:"classification"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

type trialBalanceDTO struct {
	Rows        []trialBalanceRowDTO `json:"rows"`
	TotalDebit  decimal.Decimal      `json:"total_debit"`
	TotalCredit decimal.Decimal      `json:"total_credit"`
	Tolerance   decimal.Decimal      `json:"tolerance"`
	Balanced    bool                 `json:"balanced"`
}

type accountAmountDTO struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

type incomeStatementDTO struct {
	Revenue   decimal.Decimal    `json:"revenue"`
	Expense   decimal.Decimal    `json:"expense"`
	NetIncome decimal.Decimal    `json:"net_income"`
	Revenues  []accountAmountDTO `json:"revenues"`
	Expenses  []accountAmountDTO `json:"expenses"`
}

type balanceSheetDTO struct {
	Assets         decimal.Decimal    `json:"assets"`
	Liabilities    decimal.Decimal    `json:"liabilities"`
	Equity         decimal.Decimal    `json:"equity"`
	NetIncome      decimal.Decimal    `json:"net_income"`
	AssetLines     []accountAmountDTO `json:"asset_lines"`
	LiabilityLines []accountAmountDTO `json:"liability_lines"`
	EquityLines    []accountAmountDTO `json:"equity_lines"`
}

type bookResponse struct {
	RunID           string                      `json:"run_id"`
	Accounts        []accountDTO                `json:"accounts"`
	Journal         []journalLineDTO            `json:"journal"`
	Ledgers         map[string][]ledgerEntryDTO `json:"ledgers"`
	TrialBalance    trialBalanceDTO             `json:"trial_balance"`
	IncomeStatement incomeStatementDTO          `json:"income_statement"`
	BalanceSheet    balanceSheetDTO             `json:"balance_sheet"`
}

type ledgerResponse struct {
	RunID   string           `json:"run_id"`
	Account string           `json:"account"`
	Known   bool             `json:"known"`
	Type    string           `json:"classification,omitempty"`
	Entries []ledgerEntryDTO `json:"entries"`
	Balance decimal.Decimal  `json:"balance"`
}

func toBookResponse(runID string, b *book.Book) bookResponse {
	accts := b.Accounts()
	resp := bookResponse{
		RunID:    runID,
		Accounts: make([]accountDTO, len(accts)),
		Journal:  toJournalDTO(b.Journal()),
		Ledgers:  make(map[string][]ledgerEntryDTO, len(accts)),
	}
	for i, a := range accts {
		resp.Accounts[i] = accountDTO{Name: a.Name, Type: string(a.Type), NormalSide: string(a.Type.NormalSide())}
		resp.Ledgers[a.Name] = toLedgerDTO(b.Ledger(a.Name))
	}

	rows := b.TrialBalance()
	debit, credit := b.TrialBalanceTotals()
	resp.TrialBalance = trialBalanceDTO{
		Rows:        make([]trialBalanceRowDTO, len(rows)),
		TotalDebit:  debit,
		TotalCredit: credit,
		Tolerance:   b.Tolerance(),
		Balanced:    report.CheckBalanced(rows, b.Tolerance()) == nil,
	}
	for i, r := range rows {
		resp.TrialBalance.Rows[i] = trialBalanceRowDTO{Account: r.Account, Type: string(r.Type), Debit: r.Debit, Credit: r.Credit}
	}

	is := b.IncomeStatement()
	resp.IncomeStatement = incomeStatementDTO{
		Revenue:   is.Revenue,
		Expense:   is.Expense,
		NetIncome: is.NetIncome,
		Revenues:  toAmountsDTO(is.Revenues),
		Expenses:  toAmountsDTO(is.Expenses),
	}
	bs := b.BalanceSheet()
	resp.BalanceSheet = balanceSheetDTO{
		Assets:         bs.Assets,
		Liabilities:    bs.Liabilities,
		Equity:         bs.Equity,
		NetIncome:      bs.NetIncome,
		AssetLines:     toAmountsDTO(bs.AssetLines),
		LiabilityLines: toAmountsDTO(bs.LiabilityLines),
		EquityLines:    toAmountsDTO(bs.EquityLines),
	}
	return resp
}

func toJournalDTO(lines []model.JournalLine) []journalLineDTO {
	out := make([]journalLineDTO, len(lines))
	for i, l := range lines {
		out[i] = journalLineDTO{
			EntryID:     l.EntryID,
			Date:        l.Date.Format(dateFormat),
			Account:     l.Account,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return out
}

func toLedgerDTO(entries []model.LedgerEntry) []ledgerEntryDTO {
	out := make([]ledgerEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = ledgerEntryDTO{
			EntryID:     e.EntryID,
			Date:        e.Date.Format(dateFormat),
			Description: e.Description,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Balance:     e.Balance,
		}
	}
	return out
}

func toAmountsDTO(in []model.AccountAmount) []accountAmountDTO {
	out := make([]accountAmountDTO, len(in))
	for i, a := range in {
		out[i] = accountAmountDTO{Account: a.Account, Amount: a.Amount}
	}
	return out
}
