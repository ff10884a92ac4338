package wallet

import (
	"fmt"
	"unicode/utf8"

	"github.com/Apicqq/Wallet/date"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLen bounds the description field, counted in code points.
const MaxDescriptionLen = 100

// Patch is the sparse field set submitted for an edit, as raw strings. A
// blank field means "no change" and is not validated. ID and Owner exist
// only so that attempts to change them can be rejected.
type Patch struct {
	ID          string
	Owner       string
	Date        string
	Category    string
	Amount      string
	Description string
}

// Update is a validated, normalized patch: each non-nil field replaces the
// corresponding entry field.
type Update struct {
	Date        *date.Date
	Category    *Category
	Amount      *decimal.Decimal
	Description *string
}

// Validate checks the patch field by field and stops at the first failure.
// Immutable fields are rejected before anything else is looked at. It never
// touches storage.
func (p Patch) Validate() (Update, error) {
	if p.ID != "" {
		return Update{}, ErrIDImmutable
	}
	if p.Owner != "" {
		return Update{}, ErrOwnerImmutable
	}

	var u Update
	if p.Amount != "" {
		amount, err := decimal.NewFromString(p.Amount)
		if err != nil || amount.IsNegative() {
			return Update{}, fmt.Errorf("%w: %q", ErrInvalidNumber, p.Amount)
		}
		u.Amount = &amount
	}
	if p.Category != "" {
		category, err := ParseCategory(p.Category)
		if err != nil {
			return Update{}, err
		}
		u.Category = &category
	}
	if p.Date != "" {
		on, err := date.Parse(p.Date)
		if err != nil {
			return Update{}, fmt.Errorf("%w: %q", ErrInvalidDate, p.Date)
		}
		u.Date = &on
	}
	if p.Description != "" {
		if n := utf8.RuneCountInString(p.Description); n > MaxDescriptionLen {
			return Update{}, fmt.Errorf("%w: %d code points, max %d", ErrDescriptionTooLong, n, MaxDescriptionLen)
		}
		description := p.Description
		u.Description = &description
	}
	return u, nil
}

// Apply returns a copy of the entry with the update's fields replaced.
func (u Update) Apply(e Entry) Entry {
	if u.Date != nil {
		e.Date = *u.Date
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.Amount != nil {
		e.Amount = *u.Amount
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	return e
}
