package cmd

import (
	"context"
	"flag"

	wallet "github.com/Apicqq/Wallet"
	"github.com/google/subcommands"
)

type withdrawCmd struct {
	txCmd
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record an expense entry" }
func (*withdrawCmd) Usage() string {
	return `wallet withdraw [-u <user>] [-amount <n>] [-desc <text>] [-date <YYYY-MM-DD>]

  Records an expense entry and shows the new balance.
`
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(wallet.Expense)
}
