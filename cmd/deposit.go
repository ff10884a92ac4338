package cmd

import (
	"context"
	"flag"

	wallet "github.com/Apicqq/Wallet"
	"github.com/google/subcommands"
)

type depositCmd struct {
	txCmd
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record an income entry" }
func (*depositCmd) Usage() string {
	return `wallet deposit [-u <user>] [-amount <n>] [-desc <text>] [-date <YYYY-MM-DD>]

  Records an income entry and shows the new balance.
`
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(wallet.Income)
}
