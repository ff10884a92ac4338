package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Mode selects which entries a history listing shows.
type Mode int

const (
	All Mode = iota
	OnlyIncome
	OnlyExpense
)

func (m Mode) String() string {
	switch m {
	case All:
		return "all"
	case OnlyIncome:
		return "income"
	case OnlyExpense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseMode parses a history filter mode. Anything but all, income or
// expense reports ErrUnknownMode, so callers can tell an invalid mode from
// an empty result.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "all":
		return All, nil
	case "income":
		return OnlyIncome, nil
	case "expense":
		return OnlyExpense, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// FilterByCategory returns the entries the mode selects, preserving order.
func FilterByCategory(entries []Entry, mode Mode) ([]Entry, error) {
	var keep Category
	switch mode {
	case All:
		return entries, nil
	case OnlyIncome:
		keep = Income
	case OnlyExpense:
		keep = Expense
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	var out []Entry
	for _, e := range entries {
		if e.Category == keep {
			out = append(out, e)
		}
	}
	return out, nil
}

// Search returns the entries whose named field equals the raw value. Fields
// are addressed by their stable persisted names (id, owner, date, category,
// amount, description). Matching is exact: no substring match, no case
// folding. A digits-only value is coerced to a number first and then only
// compares against numeric fields. An empty match set reports
// ErrNothingFound; an unknown field simply matches nothing.
func Search(entries []Entry, field, raw string) ([]Entry, error) {
	var out []Entry
	for _, e := range entries {
		ok, err := matches(e, field, raw)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, ErrNothingFound
	}
	return out, nil
}

// Coerce implements the search input type inference: a value made only of
// decimal digits is treated as a number, so that searching for "100"
// matches a stored amount of 100.0. Anything else compares as text.
func Coerce(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Decimal{}, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return decimal.Decimal{}, false
		}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func matches(e Entry, field, raw string) (bool, error) {
	v, err := fieldValue(e, field)
	if err != nil {
		return false, err
	}
	if v == nil {
		return false, nil
	}
	if n, ok := Coerce(raw); ok {
		// A coerced value is a number and only ever equals a number: text
		// fields never match it, even when they look numeric ("007" is not
		// found by searching "7").
		f, isNumber := v.(float64)
		return isNumber && decimal.NewFromFloat(f).Equal(n), nil
	}
	s, ok := v.(string)
	return ok && s == raw, nil
}

// fieldValue extracts a field by its persisted name from the entry's wire
// form, so that search always sees exactly what the store holds. An unknown
// field yields nil.
func fieldValue(e Entry, field string) (any, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("could not marshal entry %q: %w", e.ID, err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("could not unmarshal entry %q: %w", e.ID, err)
	}
	v, err := jsonpath.Get("$."+field, obj)
	if err != nil {
		return nil, nil
	}
	return v, nil
}
