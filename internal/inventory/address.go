// Package inventory reshapes server records into the Ansible dynamic
// inventory document: named groups of access addresses plus a per-host
// variable map under _meta.hostvars.
package inventory

import (
	"sort"
	"strings"

	"github.com/imamik/nova-inventory/internal/openstack"
)

// AccessAddress picks the single address that represents a server as its
// inventory key:
//
//  1. a non-empty accessIPv4 is used verbatim;
//  2. otherwise the floating addresses, concatenated, unless fixed
//     addresses exist and preferPrivate is set;
//  3. otherwise the fixed addresses, concatenated;
//  4. otherwise "".
//
// Entries whose type tag is neither "fixed" nor "floating" are ignored.
// Networks are walked in name order so the result is stable across runs.
func AccessAddress(srv *openstack.Server, preferPrivate bool) string {
	if srv.AccessIPv4 != "" {
		return srv.AccessIPv4
	}

	var private, public []string
	for _, network := range sortedNetworks(srv.Addresses) {
		for _, addr := range srv.Addresses[network] {
			switch addr.Type {
			case openstack.AddressTypeFixed:
				private = append(private, addr.Addr)
			case openstack.AddressTypeFloating:
				public = append(public, addr.Addr)
			}
		}
	}

	if len(public) > 0 && !(len(private) > 0 && preferPrivate) {
		return strings.Join(public, "")
	}
	if len(private) > 0 {
		return strings.Join(private, "")
	}
	return ""
}

func sortedNetworks(addresses map[string][]openstack.Address) []string {
	names := make([]string, 0, len(addresses))
	for name := range addresses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
