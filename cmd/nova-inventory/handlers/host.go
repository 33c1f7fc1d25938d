package handlers

import (
	"context"
	"io"

	"github.com/imamik/nova-inventory/internal/inventory"
	"github.com/imamik/nova-inventory/internal/openstack"
)

// Host fetches all servers and writes the flattened variables of the first
// one (in adapter order) whose access address equals address. An unmatched
// address yields an empty JSON object.
func Host(ctx context.Context, lister openstack.ServerLister, preferPrivate bool, address string, out io.Writer) error {
	srvs, err := lister.ListServers(ctx)
	if err != nil {
		return err
	}

	for i := range srvs {
		if inventory.AccessAddress(&srvs[i], preferPrivate) == address {
			return emitJSON(out, inventory.Flatten(&srvs[i]))
		}
	}
	return emitJSON(out, inventory.Hostvars{})
}
