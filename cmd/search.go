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

type searchCmd struct {
	user string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find entries by exact field value" }
func (*searchCmd) Usage() string {
	return `wallet search [-u <user>] <field> <value>

  Finds your entries whose field equals the value. Fields are the stored
  names: date, category, amount, description or id. A digits-only value is
  compared as a number, so "100" matches an amount stored as 100.0.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "Acting user.")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: search needs a field and a value.")
		return subcommands.ExitUsageError
	}
	field, value := f.Arg(0), f.Arg(1)

	session, err := login(c.user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	history, err := openLedger().History(session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	found, err := wallet.Search(history, field, value)
	if errors.Is(err, wallet.ErrNothingFound) {
		fmt.Println("Nothing found.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md, err := renderer.Entries(found, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
