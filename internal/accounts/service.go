package accounts

import (
	"cmp"
	"slices"

	"github.com/minibook-dev/minibook/internal/model"
)

// Service provides in-memory lookup over the derived chart of accounts.
type Service struct {
	accounts []model.Account
	byName   map[string]model.Account
}

// NewService creates a Service from a slice of accounts. Accounts are kept
// in report order: asset, liability, equity, revenue, expense, then name.
func NewService(accounts []model.Account) *Service {
	sorted := slices.Clone(accounts)
	slices.SortStableFunc(sorted, func(a, b model.Account) int {
		if c := cmp.Compare(a.Type.Rank(), b.Type.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	byName := make(map[string]model.Account, len(sorted))
	for _, a := range sorted {
		byName[a.Name] = a
	}
	return &Service{accounts: sorted, byName: byName}
}

// Collect classifies the union of every debit and credit account name.
func Collect(txns []model.Transaction, c *Classifier) *Service {
	seen := make(map[string]bool)
	var accts []model.Account
	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		accts = append(accts, model.Account{Name: name, Type: c.Classify(name)})
	}
	for _, txn := range txns {
		add(txn.DebitAccount)
		add(txn.CreditAccount)
	}
	return NewService(accts)
}

// All returns all accounts in report order.
func (s *Service) All() []model.Account {
	return slices.Clone(s.accounts)
}

// Names returns account names in report order.
func (s *Service) Names() []string {
	names := make([]string, len(s.accounts))
	for i, a := range s.accounts {
		names[i] = a.Name
	}
	return names
}

// Len returns the number of accounts.
func (s *Service) Len() int {
	return len(s.accounts)
}

// Get returns an account by name.
func (s *Service) Get(name string) (model.Account, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Exists reports whether an account name exists.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// ByType returns all accounts of the given type, sorted by name.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}
