package wallet

import "github.com/shopspring/decimal"

// Balance is the aggregate of a sequence of entries.
type Balance struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Sum folds entries into income, expense and net totals. It is a pure fold
// over an already owner-filtered sequence: it knows nothing about storage
// or ownership. An empty input yields the all-zero balance.
func Sum(entries []Entry) Balance {
	var b Balance
	for _, e := range entries {
		switch e.Category {
		case Income:
			b.Income = b.Income.Add(e.Amount)
		case Expense:
			b.Expense = b.Expense.Add(e.Amount)
		}
	}
	b.Net = b.Income.Sub(b.Expense)
	return b
}

// Equal reports whether two balances have the same totals.
func (b Balance) Equal(o Balance) bool {
	return b.Income.Equal(o.Income) && b.Expense.Equal(o.Expense) && b.Net.Equal(o.Net)
}
