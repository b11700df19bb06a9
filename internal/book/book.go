// Package book is the engine boundary: it turns a batch of transactions
// into a complete, read-only set of derived bookkeeping artifacts.
package book

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/accounts"
	"github.com/minibook-dev/minibook/internal/errs"
	"github.com/minibook-dev/minibook/internal/journal"
	"github.com/minibook-dev/minibook/internal/ledger"
	"github.com/minibook-dev/minibook/internal/model"
	"github.com/minibook-dev/minibook/internal/report"
)

// Book holds every artifact derived from one batch of transactions.
// It is immutable; accessors return copies.
type Book struct {
	transactions int
	chart        *accounts.Service
	lines        []model.JournalLine
	ledgers      *ledger.Ledgers
	trial        []model.TrialBalanceRow
	income       model.IncomeStatement
	balance      model.BalanceSheet
	tolerance    decimal.Decimal
}

// Option configures a derivation.
type Option func(*options)

type options struct {
	classifier *accounts.Classifier
	tolerance  decimal.Decimal
}

// WithClassifier replaces the default keyword classifier.
func WithClassifier(c *accounts.Classifier) Option {
	return func(o *options) {
		if c != nil {
			o.classifier = c
		}
	}
}

// WithTolerance sets the absolute tolerance of the balance checks.
func WithTolerance(tol decimal.Decimal) Option {
	return func(o *options) {
		if !tol.IsNegative() {
			o.tolerance = tol
		}
	}
}

// Derive runs the full pipeline: classify, journal, validate, ledgers,
// trial balance, statements, balance checks. It returns either a complete
// Book or an error, never a partial result. txns is not modified.
func Derive(txns []model.Transaction, opts ...Option) (*Book, error) {
	o := options{
		classifier: accounts.DefaultClassifier(),
		tolerance:  report.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	lines, err := journal.Build(txns)
	if err != nil {
		return nil, err
	}

	chart := accounts.Collect(txns, o.classifier)
	if err := checkJournal(lines, chart, o.tolerance); err != nil {
		return nil, err
	}

	ledgers := ledger.Build(lines, chart.Names())
	chartAccounts := chart.All()

	trial := report.TrialBalance(chartAccounts, ledgers)
	if err := report.CheckBalanced(trial, o.tolerance); err != nil {
		return nil, err
	}

	income, balance := report.Statements(chart, ledgers)
	if err := report.CheckBalanceSheet(balance, o.tolerance); err != nil {
		return nil, err
	}

	return &Book{
		transactions: len(txns),
		chart:        chart,
		lines:        lines,
		ledgers:      ledgers,
		trial:        trial,
		income:       income,
		balance:      balance,
		tolerance:    o.tolerance,
	}, nil
}

// DeriveRaw parses raw rows and derives a Book from them.
func DeriveRaw(raw []model.RawTransaction, opts ...Option) (*Book, error) {
	txns, err := ParseTransactions(raw)
	if err != nil {
		return nil, err
	}
	return Derive(txns, opts...)
}

func checkJournal(lines []model.JournalLine, chart *accounts.Service, tol decimal.Decimal) error {
	debit, credit := journal.Totals(lines)
	if debit.Sub(credit).Abs().GreaterThan(tol) {
		return &errs.ImbalanceError{Scope: "journal", Debit: debit, Credit: credit}
	}

	violations := journal.ValidateLines(lines, chart)
	if len(violations) == 0 {
		return nil
	}
	kind := errs.ErrInvariant
	msgs := make([]string, len(violations))
	for i, v := range violations {
		if v.Invariant == journal.InvariantBalanced {
			kind = errs.ErrImbalance
		}
		msgs[i] = v.Error()
	}
	return fmt.Errorf("%w: %s", kind, strings.Join(msgs, "; "))
}

// Transactions returns how many transactions were booked.
func (b *Book) Transactions() int { return b.transactions }

// Accounts returns the classified chart in report order.
func (b *Book) Accounts() []model.Account { return b.chart.All() }

// Classification returns the type of name and whether the account exists.
func (b *Book) Classification(name string) (model.AccountType, bool) {
	a, ok := b.chart.Get(name)
	return a.Type, ok
}

// AccountsByType returns the accounts of one classification in report order.
func (b *Book) AccountsByType(t model.AccountType) []model.Account { return b.chart.ByType(t) }

// HasAccount reports whether any transaction touched name.
func (b *Book) HasAccount(name string) bool { return b.chart.Exists(name) }

// Journal returns the journal in chronological order.
func (b *Book) Journal() []model.JournalLine { return slices.Clone(b.lines) }

// Ledger returns the ledger for name. Unknown accounts yield an empty ledger.
func (b *Book) Ledger(name string) []model.LedgerEntry { return b.ledgers.Entries(name) }

// LookupLedger is Ledger plus a report of whether name is known. For an
// account no transaction touched it returns an empty ledger together with
// an error wrapping errs.ErrUnknownAccount; callers may treat that as a
// warning.
func (b *Book) LookupLedger(name string) ([]model.LedgerEntry, error) {
	entries := b.ledgers.Entries(name)
	if !b.ledgers.Known(name) {
		return entries, fmt.Errorf("%w: %q", errs.ErrUnknownAccount, name)
	}
	return entries, nil
}

// Tolerance returns the absolute tolerance the balance checks ran with.
func (b *Book) Tolerance() decimal.Decimal { return b.tolerance }

// Balance returns the signed final balance of name (debit positive).
func (b *Book) Balance(name string) decimal.Decimal { return b.ledgers.Balance(name) }

// TrialBalance returns one row per account in report order.
func (b *Book) TrialBalance() []model.TrialBalanceRow { return slices.Clone(b.trial) }

// TrialBalanceTotals returns the debit and credit column totals.
func (b *Book) TrialBalanceTotals() (debit, credit decimal.Decimal) {
	return report.Totals(b.trial)
}

// IncomeStatement returns revenue, expense and net income.
func (b *Book) IncomeStatement() model.IncomeStatement {
	is := b.income
	is.Revenues = slices.Clone(is.Revenues)
	is.Expenses = slices.Clone(is.Expenses)
	return is
}

// BalanceSheet returns assets, liabilities and equity (including net income).
func (b *Book) BalanceSheet() model.BalanceSheet {
	bs := b.balance
	bs.AssetLines = slices.Clone(bs.AssetLines)
	bs.LiabilityLines = slices.Clone(bs.LiabilityLines)
	bs.EquityLines = slices.Clone(bs.EquityLines)
	return bs
}

// Summary is a one-glance digest of a Book.
type Summary struct {
	Transactions int
	Accounts     int
	JournalLines int
	TotalDebit   decimal.Decimal
	TotalCredit  decimal.Decimal
	Revenue      decimal.Decimal
	Expense      decimal.Decimal
	NetIncome    decimal.Decimal
	Assets       decimal.Decimal
	Liabilities  decimal.Decimal
	Equity       decimal.Decimal
}

// Summary returns headline figures.
func (b *Book) Summary() Summary {
	debit, credit := b.TrialBalanceTotals()
	return Summary{
		Transactions: b.transactions,
		Accounts:     b.chart.Len(),
		JournalLines: len(b.lines),
		TotalDebit:   debit,
		TotalCredit:  credit,
		Revenue:      b.income.Revenue,
		Expense:      b.income.Expense,
		NetIncome:    b.income.NetIncome,
		Assets:       b.balance.Assets,
		Liabilities:  b.balance.Liabilities,
		Equity:       b.balance.Equity,
	}
}

// Document assembles the HTML report content for this Book.
func (b *Book) Document(business string, money report.Money) report.Document {
	names := b.ledgers.Accounts()
	ledgers := make([]report.AccountLedger, len(names))
	for i, n := range names {
		ledgers[i] = report.AccountLedger{Account: n, Entries: b.ledgers.Entries(n)}
	}
	return report.Document{
		Business:     business,
		Money:        money,
		Accounts:     b.Accounts(),
		Journal:      b.Journal(),
		Ledgers:      ledgers,
		TrialBalance: b.TrialBalance(),
		Income:       b.IncomeStatement(),
		Balance:      b.BalanceSheet(),
		Tolerance:    b.tolerance,
	}
}
