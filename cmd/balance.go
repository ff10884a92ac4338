package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	wallet "github.com/Apicqq/Wallet"
	"github.com/Apicqq/Wallet/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	user string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the current balance" }
func (*balanceCmd) Usage() string {
	return `wallet balance [-u <user>]

  Shows the net balance with the income and expense totals.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "Acting user.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Balance(wallet.Sum(history), *currency))
	return subcommands.ExitSuccess
}
