// Package cmd implements the CLI application to manage a personal wallet.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	wallet "github.com/Apicqq/Wallet"
	"github.com/Apicqq/Wallet/auth"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// Commands lists every subcommand the wallet binary registers.
var Commands = []subcommands.Command{
	&registerCmd{},
	&balanceCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&historyCmd{},
	&searchCmd{},
	&editCmd{},
	&topicCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the app-wide flags.
var walletFile = flag.String("wallet-file", "wallets.jsonl", "Path to the wallet entries file (JSONL format)")
var usersFile = flag.String("users-file", "users.jsonl", "Path to the users credentials file (JSONL format)")
var currency = flag.String("currency", "USD", "Display currency for amounts")

// openLedger returns the ledger over the app wallet store.
func openLedger() *wallet.Ledger {
	return wallet.NewLedger(wallet.NewStore(*walletFile))
}

// login authenticates the acting user against the users store and returns
// the wallet session. The password is always prompted, never a flag.
func login(user string) (wallet.Session, error) {
	var err error
	if user == "" {
		if user, err = readLine("User name: "); err != nil {
			return wallet.Session{}, err
		}
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return wallet.Session{}, err
	}
	name, err := auth.NewRegistry(*usersFile).Authenticate(user, password)
	if err != nil {
		return wallet.Session{}, err
	}
	return wallet.NewSession(name), nil
}

// readLine prompts on stdout and reads one line from stdin.
func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("could not read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readPassword prompts on stdout and reads a password without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	defer fmt.Println()
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	return string(b), nil
}

// parseAmount parses a user-entered amount. This is the only gate between
// raw input and the ledger, which expects an already-parsed value.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", wallet.ErrInvalidNumber, raw)
	}
	return amount, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown, which is still readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
