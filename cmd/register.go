package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Apicqq/Wallet/auth"
	"github.com/google/subcommands"
)

type registerCmd struct {
	user string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a user account" }
func (*registerCmd) Usage() string {
	return `wallet register [-u <user>]

  Creates a user account. The password is prompted and stored as a hash in
  the users file.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "User name to register.")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user := c.user
	var err error
	if user == "" {
		if user, err = readLine("User name: "); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	password, err := readPassword("Password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	confirm, err := readPassword("Repeat password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if password != confirm {
		fmt.Fprintln(os.Stderr, "Error: passwords do not match.")
		return subcommands.ExitFailure
	}

	if err := auth.NewRegistry(*usersFile).Register(user, password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Welcome, %s! You can now use your wallet.\n", user)
	return subcommands.ExitSuccess
}
