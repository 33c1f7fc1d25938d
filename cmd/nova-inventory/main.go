// Package main is the entry point for the nova-inventory CLI.
//
// nova-inventory queries an OpenStack compute endpoint and prints an
// Ansible dynamic inventory document on stdout. Connection settings come
// from a nova.ini file with environment variable fallbacks.
//
// Invocation:
//
//	nova-inventory [--list]
//	nova-inventory --host <address>
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/imamik/nova-inventory/cmd/nova-inventory/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		if errors.Is(err, commands.ErrUsage) {
			fmt.Println(commands.Usage)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
