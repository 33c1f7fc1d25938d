package openstack

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"

	"github.com/imamik/nova-inventory/internal/config"
)

// Client implements ServerLister against a real OpenStack deployment.
type Client struct {
	compute *gophercloud.ServiceClient
}

// NewClient authenticates against the identity endpoint described by the
// profile and builds a compute service client. Authentication failures and
// endpoint lookup failures are returned as-is for the caller to report;
// there are no retries.
func NewClient(ctx context.Context, profile *config.Profile) (*Client, error) {
	provider, err := openstack.NewClient(profile.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider client: %w", err)
	}

	if profile.Insecure {
		provider.HTTPClient = http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402
			},
		}
	}

	opts := gophercloud.AuthOptions{
		IdentityEndpoint: profile.AuthURL,
		Username:         profile.Username,
		Password:         profile.APIKey,
		TenantName:       profile.ProjectID,
		AllowReauth:      true,
	}
	if err := openstack.Authenticate(ctx, provider, opts); err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	compute, err := openstack.NewComputeV2(provider, gophercloud.EndpointOpts{
		Region:       profile.RegionName,
		Name:         profile.ServiceName,
		Availability: availability(profile.EndpointType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to locate compute endpoint: %w", err)
	}

	return &Client{compute: compute}, nil
}

// ListServers returns every server in the project, collected across all
// result pages, in the order the API reports them.
func (c *Client) ListServers(ctx context.Context) ([]Server, error) {
	pages, err := servers.List(c.compute, servers.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	raw, err := servers.ExtractServers(pages)
	if err != nil {
		return nil, fmt.Errorf("failed to decode server list: %w", err)
	}

	out := make([]Server, 0, len(raw))
	for i := range raw {
		out = append(out, fromAPI(&raw[i]))
	}
	return out, nil
}

// availability maps a nova.ini endpoint_type value ("publicURL",
// "internal", ...) to the catalog availability used for endpoint lookup.
// Unknown values fall back to the public endpoint.
func availability(endpointType string) gophercloud.Availability {
	switch strings.TrimSuffix(strings.ToLower(endpointType), "url") {
	case "internal":
		return gophercloud.AvailabilityInternal
	case "admin":
		return gophercloud.AvailabilityAdmin
	default:
		return gophercloud.AvailabilityPublic
	}
}
