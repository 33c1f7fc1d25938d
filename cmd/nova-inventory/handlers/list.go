// Package handlers implements the two inventory modes behind the CLI.
//
// Handlers receive the server lister and the prefer-private flag
// explicitly; they never reach into configuration or ambient state, which
// keeps them testable against the mock lister.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/imamik/nova-inventory/internal/inventory"
	"github.com/imamik/nova-inventory/internal/openstack"
)

// List fetches all servers and writes the full grouped inventory document
// to out as indented JSON.
func List(ctx context.Context, lister openstack.ServerLister, preferPrivate bool, out io.Writer) error {
	srvs, err := lister.ListServers(ctx)
	if err != nil {
		return err
	}
	return emitJSON(out, inventory.Build(srvs, preferPrivate))
}

// emitJSON writes v as two-space-indented JSON followed by a newline.
// Map keys sort lexicographically under encoding/json, which gives the
// stable key order the inventory contract expects.
func emitJSON(out io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
