// Package renderer produces markdown views of wallet data. The canonical
// category tags become display labels here and nowhere else.
package renderer

import (
	"fmt"
	"strings"

	wallet "github.com/Apicqq/Wallet"
)

// Entries renders entries as a markdown table in a fixed field order:
// date, category, amount, description, id.
//
// An empty input reports wallet.ErrNothingFound, so the caller can tell the
// user rather than print a bare header.
func Entries(entries []wallet.Entry, currency string) (string, error) {
	if len(entries) == 0 {
		return "", wallet.ErrNothingFound
	}
	var b strings.Builder
	b.WriteString("| Date | Category | Amount | Description | ID |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			e.Date,
			e.Category.Label(),
			wallet.M(e.Amount, currency),
			escape(e.Description),
			e.ID,
		)
	}
	return b.String(), nil
}

// Balance renders the aggregate totals of a history.
func Balance(b wallet.Balance, currency string) string {
	var s strings.Builder
	fmt.Fprintf(&s, "Current balance: **%s**\n\n", wallet.M(b.Net, currency))
	fmt.Fprintf(&s, "Income: %s, Expenses: %s\n",
		wallet.M(b.Income, currency),
		wallet.M(b.Expense, currency),
	)
	return s.String()
}

// Entry renders a single entry as a one-row table.
func Entry(e wallet.Entry, currency string) string {
	s, err := Entries([]wallet.Entry{e}, currency)
	if err != nil {
		// Unreachable: the input is never empty.
		return err.Error()
	}
	return s
}

// escape keeps free-text descriptions from breaking the table layout.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
