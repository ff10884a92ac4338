package wallet

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "income", want: Income},
		{in: "expense", want: Expense},
		{in: "Income", want: Income},  // display label synonym
		{in: "Expense", want: Expense},
		{in: "INCOME", wantErr: true},
		{in: "deposit", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseCategory(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidCategory) {
				t.Errorf("ParseCategory(%q) error = %v, want ErrInvalidCategory", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseCategory(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestCategory_Label(t *testing.T) {
	if Income.Label() != "Income" || Expense.Label() != "Expense" {
		t.Errorf("labels = %q/%q, want Income/Expense", Income.Label(), Expense.Label())
	}
}
