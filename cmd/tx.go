package cmd

import (
	"flag"
	"fmt"
	"os"

	wallet "github.com/Apicqq/Wallet"
	"github.com/Apicqq/Wallet/date"
	"github.com/Apicqq/Wallet/renderer"
	"github.com/google/subcommands"
)

// txCmd carries the flags shared by the deposit and withdraw commands,
// which differ only in the category they record.
type txCmd struct {
	user        string
	amount      string
	description string
	date        string
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "Acting user.")
	f.StringVar(&c.amount, "amount", "", "Amount to record (prompted when omitted).")
	f.StringVar(&c.description, "desc", "", "Free-text description, up to 100 characters.")
	f.StringVar(&c.date, "date", "", "Entry date as YYYY-MM-DD. Defaults to today.")
}

// run records one entry of the given category and prints the new balance.
func (c *txCmd) run(category wallet.Category) subcommands.ExitStatus {
	session, err := login(c.user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	raw := c.amount
	if raw == "" {
		if raw, err = readLine("Amount: "); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	amount, err := parseAmount(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var on date.Date
	if c.date != "" {
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger := openLedger()
	if _, err := ledger.Append(session, category, amount, c.description, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	history, err := ledger.History(session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Recorded.")
	printMarkdown(renderer.Balance(wallet.Sum(history), *currency))
	return subcommands.ExitSuccess
}
