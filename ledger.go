package wallet

import (
	"fmt"

	"github.com/Apicqq/Wallet/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the repository of entries for all principals. It owns the
// owner filtering, the id lookup, the append and the validated edit over
// the collection held by its Store.
//
// The ledger keeps no state between operations: every call loads the full
// collection, works on it, and discards it.
type Ledger struct {
	store *Store

	// overridable for tests
	today func() date.Date
	newID func() string
}

// NewLedger returns a ledger over the given store.
func NewLedger(store *Store) *Ledger {
	return &Ledger{
		store: store,
		today: date.Today,
		newID: uuid.NewString,
	}
}

// History returns the session principal's entries, in storage order.
func (l *Ledger) History(s Session) ([]Entry, error) {
	if err := s.restricted(); err != nil {
		return nil, err
	}
	all, err := l.store.LoadAll()
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, e := range all {
		if e.Owner == s.User {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Find returns the principal's entry with the given id, or ErrNotFound.
func (l *Ledger) Find(s Session, id string) (Entry, error) {
	entries, err := l.History(s)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Append records a new entry for the session principal and returns it as
// persisted. The amount must already be parsed; a zero date defaults to
// today. The id is generated here and is unique across the store.
func (l *Ledger) Append(s Session, category Category, amount decimal.Decimal, description string, on date.Date) (Entry, error) {
	if err := s.restricted(); err != nil {
		return Entry{}, err
	}
	if on.IsZero() {
		on = l.today()
	}
	e := Entry{
		ID:          l.newID(),
		Owner:       s.User,
		Date:        on,
		Category:    category,
		Amount:      amount,
		Description: description,
	}

	all, err := l.store.LoadAll()
	if err != nil {
		return Entry{}, err
	}
	all = append(all, e)
	if err := l.store.SaveAll(all); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Edit applies a sparse patch to the principal's entry with the given id.
//
// A missing entry reports ErrNotFound before the patch is looked at. A patch
// that fails validation aborts with no write at all. On success only the
// fields submitted with a non-blank value change, the whole collection is
// rewritten, and the updated entry is returned.
func (l *Ledger) Edit(s Session, id string, p Patch) (Entry, error) {
	if err := s.restricted(); err != nil {
		return Entry{}, err
	}
	all, err := l.store.LoadAll()
	if err != nil {
		return Entry{}, err
	}

	target := -1
	for i, e := range all {
		if e.Owner == s.User && e.ID == id {
			target = i
			break
		}
	}
	if target < 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	update, err := p.Validate()
	if err != nil {
		return Entry{}, err
	}

	all[target] = update.Apply(all[target])
	if err := l.store.SaveAll(all); err != nil {
		return Entry{}, err
	}
	return all[target], nil
}
