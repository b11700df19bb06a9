package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/model"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html.tmpl"))

// AccountLedger pairs an account with its ledger rows for rendering.
type AccountLedger struct {
	Account string
	Entries []model.LedgerEntry
}

// Document is everything the HTML report shows. It carries no timestamps
// so the same book always renders to the same bytes.
type Document struct {
	Business     string
	Money        Money
	Accounts     []model.Account
	Journal      []model.JournalLine
	Ledgers      []AccountLedger
	TrialBalance []model.TrialBalanceRow
	Income       model.IncomeStatement
	Balance      model.BalanceSheet
	// Tolerance is the balance-check tolerance the book was derived with.
	// Zero demands exact agreement.
	Tolerance decimal.Decimal
}

type view struct {
	Document
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
}

// Fmt formats d in the document's currency.
func (v view) Fmt(d decimal.Decimal) string { return v.Money.Format(d) }

// RenderHTML writes a standalone HTML page with every derived artifact.
func RenderHTML(w io.Writer, doc Document) error {
	debit, credit := Totals(doc.TrialBalance)
	v := view{
		Document:    doc,
		TotalDebit:  debit,
		TotalCredit: credit,
		Balanced:    CheckBalanced(doc.TrialBalance, doc.Tolerance) == nil,
	}
	if err := reportTemplate.Execute(w, v); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}
