// Package openstack provides a thin adapter around the OpenStack compute
// API. It abstracts the gophercloud SDK behind a single capability
// interface so the inventory shaping code never touches SDK types.
package openstack

import (
	"context"
)

// ServerLister lists the servers visible to the configured project.
// It is the only capability the inventory pipeline needs from the cloud.
type ServerLister interface {
	// ListServers returns all servers in the order reported by the API.
	ListServers(ctx context.Context) ([]Server, error)
}
