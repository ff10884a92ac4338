package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	wallet "github.com/Apicqq/Wallet"
	"github.com/Apicqq/Wallet/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	user        string
	date        string
	category    string
	amount      string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of an existing entry" }
func (*editCmd) Usage() string {
	return `wallet edit [-u <user>] [-date <YYYY-MM-DD>] [-category income|expense] [-amount <n>] [-desc <text>] <id>

  Changes only the fields given a value; everything else keeps its current
  value. The id and the owner of an entry can never be changed. A rejected
  edit leaves the ledger untouched.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "Acting user.")
	f.StringVar(&c.date, "date", "", "New date as YYYY-MM-DD.")
	f.StringVar(&c.category, "category", "", "New category: income or expense.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.description, "desc", "", "New description, up to 100 characters.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit needs the id of the entry to change.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	session, err := login(c.user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	edited, err := openLedger().Edit(session, id, wallet.Patch{
		Date:        c.date,
		Category:    c.category,
		Amount:      c.amount,
		Description: c.description,
	})
	if errors.Is(err, wallet.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no entry with id %q.\n", id)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Println("Updated.")
	printMarkdown(renderer.Entry(edited, *currency))
	return subcommands.ExitSuccess
}
