package inventory

import (
	"regexp"
	"strings"

	"github.com/imamik/nova-inventory/internal/openstack"
)

// Hostvars is the flattened per-host variable map attached to an access
// address for variable injection into an orchestration run.
type Hostvars map[string]any

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// flatKey lowercases an attribute name and replaces every non-alphanumeric
// character with an underscore: "OS-EXT-STS:vm_state" -> "os_ext_sts_vm_state".
func flatKey(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "_")
}

// Flatten maps a server record's fields into os_-prefixed host variables.
// The known fields map to fixed keys matching their compute API names;
// provider extension attributes are folded in under their sanitized wire
// names. Values are passed through unmodified, nested structures included.
func Flatten(srv *openstack.Server) Hostvars {
	vars := Hostvars{
		"os_id":              srv.ID,
		"os_name":            srv.Name,
		"os_status":          srv.Status,
		"os_tenant_id":       srv.TenantID,
		"os_user_id":         srv.UserID,
		"os_hostid":          srv.HostID,
		"os_key_name":        srv.KeyName,
		"os_created":         srv.Created,
		"os_updated":         srv.Updated,
		"os_accessipv4":      srv.AccessIPv4,
		"os_accessipv6":      srv.AccessIPv6,
		"os_progress":        srv.Progress,
		"os_image":           srv.Image,
		"os_flavor":          srv.Flavor,
		"os_addresses":       srv.Addresses,
		"os_metadata":        srv.Metadata,
		"os_security_groups": srv.SecurityGroups,
	}

	for key, val := range srv.Extra {
		vars["os_"+flatKey(key)] = val
	}

	return vars
}
