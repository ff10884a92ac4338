package wallet

import (
	"fmt"

	"github.com/Apicqq/Wallet/date"
	"github.com/shopspring/decimal"
)

// Category is the canonical classification of an entry. Only the two
// canonical tags are ever persisted; display labels exist at render time
// only.
type Category string

const (
	Income  Category = "income"
	Expense Category = "expense"
)

// Label returns the user-facing label for the category.
func (c Category) Label() string {
	switch c {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return string(c)
	}
}

// ParseCategory parses a category from its canonical tag or its display
// label, normalized to the canonical form.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "income", "Income":
		return Income, nil
	case "expense", "Expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// Entry is one recorded transaction in the ledger.
//
// The json tags are the stable store identifiers: they never follow the
// display locale and must not change, or existing stores become unreadable.
type Entry struct {
	ID          string          `json:"id"`    // unique, set at creation, immutable
	Owner       string          `json:"owner"` // owning principal, immutable
	Date        date.Date       `json:"date"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"` // non-negative magnitude; direction comes from Category
	Description string          `json:"description"`
}

// Equal reports whether two entries have the same field values. Amounts are
// compared by value, so 100 and 100.0 are equal.
func (e Entry) Equal(o Entry) bool {
	return e.ID == o.ID &&
		e.Owner == o.Owner &&
		e.Date == o.Date &&
		e.Category == o.Category &&
		e.Amount.Equal(o.Amount) &&
		e.Description == o.Description
}
