// Package config loads the OpenStack connection profile from a nova.ini
// file, with environment variables as a per-field fallback.
//
// The [Profile] struct is the canonical representation of one invocation's
// connection settings. It is produced once at startup and passed explicitly
// to the client adapter; nothing in this package is consulted after that.
package config

import "errors"

// Section is the nova.ini section holding all connection settings.
const Section = "openstack"

// ErrNotFound is returned by Load when none of the candidate
// configuration files exist.
var ErrNotFound = errors.New("no configuration file found")

// Profile holds the OpenStack connection settings for one run.
//
// Missing credentials are not validated here; they surface as
// authentication errors from the client adapter.
type Profile struct {
	Version      string
	Username     string
	APIKey       string
	AuthURL      string
	AuthSystem   string
	RegionName   string
	ProjectID    string
	EndpointType string
	ServiceType  string
	ServiceName  string

	// Insecure disables TLS certificate verification on the API client.
	Insecure bool

	// PreferPrivate selects fixed addresses over floating ones when
	// choosing a server's access address.
	PreferPrivate bool
}

// applyDefaults fills in the fields that nova.ini may omit.
func applyDefaults(p *Profile) {
	if p.ServiceType == "" {
		p.ServiceType = "compute"
	}
}
