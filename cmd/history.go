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

type historyCmd struct {
	user string
	mode string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list your entries" }
func (*historyCmd) Usage() string {
	return `wallet history [-u <user>] [-mode all|income|expense]

  Lists your entries in the order they were recorded, optionally keeping
  only one category.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "Acting user.")
	f.StringVar(&c.mode, "mode", "all", "Which entries to show: all, income or expense.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := wallet.ParseMode(c.mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

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

	filtered, err := wallet.FilterByCategory(history, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md, err := renderer.Entries(filtered, *currency)
	if errors.Is(err, wallet.ErrNothingFound) {
		fmt.Println("Nothing found.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
