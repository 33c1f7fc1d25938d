package openstack

import "context"

// Mock is a test double for ServerLister.
type Mock struct {
	ListServersFunc func(ctx context.Context) ([]Server, error)
}

func (m *Mock) ListServers(ctx context.Context) ([]Server, error) {
	return m.ListServersFunc(ctx)
}
