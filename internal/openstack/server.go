package openstack

import (
	"time"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
)

// Address classification tags used by the compute addressing model.
const (
	AddressTypeFixed    = "fixed"
	AddressTypeFloating = "floating"
)

// Address is one entry in a server's per-network address list.
type Address struct {
	Addr    string `json:"addr"`
	Type    string `json:"OS-EXT-IPS:type,omitempty"`
	Version int    `json:"version,omitempty"`
	MACAddr string `json:"OS-EXT-IPS-MAC:mac_addr,omitempty"`
}

// Server is the typed server record handed to the inventory shaper.
//
// Provider extension attributes that are not part of the known field set
// are collected into Extra under their wire names, e.g.
// "OS-EXT-STS:vm_state".
type Server struct {
	ID         string
	Name       string
	Status     string
	TenantID   string
	UserID     string
	HostID     string
	KeyName    string
	Created    time.Time
	Updated    time.Time
	AccessIPv4 string
	AccessIPv6 string
	Progress   int

	Image          map[string]any
	Flavor         map[string]any
	Addresses      map[string][]Address
	Metadata       map[string]string
	SecurityGroups []map[string]any

	Extra map[string]any
}

// fromAPI converts a gophercloud server result into a Server record.
func fromAPI(src *servers.Server) Server {
	return Server{
		ID:         src.ID,
		Name:       src.Name,
		Status:     src.Status,
		TenantID:   src.TenantID,
		UserID:     src.UserID,
		HostID:     src.HostID,
		KeyName:    src.KeyName,
		Created:    src.Created,
		Updated:    src.Updated,
		AccessIPv4: src.AccessIPv4,
		AccessIPv6: src.AccessIPv6,
		Progress:   src.Progress,

		Image:          src.Image,
		Flavor:         src.Flavor,
		Addresses:      parseAddresses(src.Addresses),
		Metadata:       src.Metadata,
		SecurityGroups: src.SecurityGroups,

		Extra: extensionAttributes(src),
	}
}

// parseAddresses converts the raw addresses mapping returned by the API
// (network name to a list of untyped entries) into typed address lists.
// Entries that are not objects are dropped.
func parseAddresses(raw map[string]any) map[string][]Address {
	if len(raw) == 0 {
		return nil
	}

	out := make(map[string][]Address, len(raw))
	for network, v := range raw {
		entries, ok := v.([]any)
		if !ok {
			continue
		}
		for _, e := range entries {
			fields, ok := e.(map[string]any)
			if !ok {
				continue
			}
			addr := Address{}
			if s, ok := fields["addr"].(string); ok {
				addr.Addr = s
			}
			if s, ok := fields["OS-EXT-IPS:type"].(string); ok {
				addr.Type = s
			}
			if s, ok := fields["OS-EXT-IPS-MAC:mac_addr"].(string); ok {
				addr.MACAddr = s
			}
			if f, ok := fields["version"].(float64); ok {
				addr.Version = int(f)
			}
			out[network] = append(out[network], addr)
		}
	}
	return out
}

// extensionAttributes collects the provider extension fields gophercloud
// decodes alongside the core server document, keyed by their wire names.
// Zero values are omitted so absent extensions do not show up as hostvars.
func extensionAttributes(src *servers.Server) map[string]any {
	extra := make(map[string]any)

	set := func(key, val string) {
		if val != "" {
			extra[key] = val
		}
	}
	set("OS-EXT-AZ:availability_zone", src.AvailabilityZone)
	set("OS-EXT-SRV-ATTR:host", src.Host)
	set("OS-EXT-SRV-ATTR:instance_name", src.InstanceName)
	set("OS-EXT-SRV-ATTR:hypervisor_hostname", src.HypervisorHostname)
	set("OS-EXT-STS:task_state", src.TaskState)
	set("OS-EXT-STS:vm_state", src.VmState)

	if !src.LaunchedAt.IsZero() {
		extra["OS-SRV-USG:launched_at"] = src.LaunchedAt
	}
	if !src.TerminatedAt.IsZero() {
		extra["OS-SRV-USG:terminated_at"] = src.TerminatedAt
	}

	if len(extra) == 0 {
		return nil
	}
	return extra
}
