package wallet

import (
	"testing"

	"github.com/shopspring/decimal"
)

func entry(c Category, amount float64) Entry {
	return Entry{Category: c, Amount: decimal.NewFromFloat(amount)}
}

func TestSum(t *testing.T) {
	testCases := []struct {
		name    string
		entries []Entry
		want    Balance
	}{
		{
			name: "empty input is all zero",
			want: Balance{},
		},
		{
			name:    "single income",
			entries: []Entry{entry(Income, 100)},
			want: Balance{
				Income:  decimal.NewFromInt(100),
				Expense: decimal.Zero,
				Net:     decimal.NewFromInt(100),
			},
		},
		{
			name:    "income and expense",
			entries: []Entry{entry(Income, 100), entry(Expense, 40)},
			want: Balance{
				Income:  decimal.NewFromInt(100),
				Expense: decimal.NewFromInt(40),
				Net:     decimal.NewFromInt(60),
			},
		},
		{
			name:    "expenses above income go negative",
			entries: []Entry{entry(Income, 10), entry(Expense, 25.5)},
			want: Balance{
				Income:  decimal.NewFromInt(10),
				Expense: decimal.RequireFromString("25.5"),
				Net:     decimal.RequireFromString("-15.5"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sum(tc.entries)
			if !got.Equal(tc.want) {
				t.Errorf("Sum() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSum_NetIsIncomeMinusExpense(t *testing.T) {
	entries := []Entry{
		entry(Income, 100), entry(Expense, 40), entry(Income, 0.1), entry(Expense, 0.2),
	}
	b := Sum(entries)
	if !b.Net.Equal(b.Income.Sub(b.Expense)) {
		t.Errorf("Net = %v, want Income - Expense = %v", b.Net, b.Income.Sub(b.Expense))
	}
}

func TestSum_Additivity(t *testing.T) {
	a := []Entry{entry(Income, 100), entry(Expense, 40)}
	b := []Entry{entry(Income, 3), entry(Expense, 7.25)}

	union := Sum(append(append([]Entry{}, a...), b...))
	sa, sb := Sum(a), Sum(b)
	want := Balance{
		Income:  sa.Income.Add(sb.Income),
		Expense: sa.Expense.Add(sb.Expense),
		Net:     sa.Net.Add(sb.Net),
	}
	if !union.Equal(want) {
		t.Errorf("Sum(A∪B) = %+v, want Sum(A)+Sum(B) = %+v", union, want)
	}
}
