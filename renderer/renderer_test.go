package renderer

import (
	"errors"
	"strings"
	"testing"

	wallet "github.com/Apicqq/Wallet"
	"github.com/Apicqq/Wallet/date"
	"github.com/shopspring/decimal"
)

func TestEntries(t *testing.T) {
	entries := []wallet.Entry{
		{ID: "id-1", Owner: "alice", Date: date.MustParse("2024-09-05"), Category: wallet.Income, Amount: decimal.NewFromInt(100), Description: "salary"},
		{ID: "id-2", Owner: "alice", Date: date.MustParse("2024-09-06"), Category: wallet.Expense, Amount: decimal.NewFromInt(40), Description: "pipes | tubes"},
	}

	got, err := Entries(entries, "USD")
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}

	// Display labels, never the canonical tags.
	for _, want := range []string{"Income", "Expense", "$100.00", "$40.00", "2024-09-05", "id-2"} {
		if !strings.Contains(got, want) {
			t.Errorf("Entries() output missing %q:\n%s", want, got)
		}
	}
	for _, label := range []string{"| income |", "| expense |"} {
		if strings.Contains(got, label) {
			t.Errorf("Entries() leaked canonical tag %q:\n%s", label, got)
		}
	}
	if !strings.Contains(got, `pipes \| tubes`) {
		t.Errorf("Entries() did not escape the table separator:\n%s", got)
	}
}

func TestEntries_Empty(t *testing.T) {
	if _, err := Entries(nil, "USD"); !errors.Is(err, wallet.ErrNothingFound) {
		t.Errorf("Entries(nil) error = %v, want ErrNothingFound", err)
	}
}

func TestBalance(t *testing.T) {
	b := wallet.Sum([]wallet.Entry{
		{Category: wallet.Income, Amount: decimal.NewFromInt(100)},
		{Category: wallet.Expense, Amount: decimal.NewFromInt(40)},
	})
	got := Balance(b, "USD")
	for _, want := range []string{"$60.00", "$100.00", "$40.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Balance() output missing %q:\n%s", want, got)
		}
	}
}
