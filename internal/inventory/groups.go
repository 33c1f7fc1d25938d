package inventory

import (
	"encoding/json"
	"regexp"

	"github.com/imamik/nova-inventory/internal/openstack"
)

// DefaultGroup is the fallback inventory group for servers whose metadata
// carries no "group" key.
const DefaultGroup = "undefined"

var unsafeGroupChars = regexp.MustCompile(`[^A-Za-z0-9-]`)

// SafeGroupName replaces every character outside [A-Za-z0-9-] with an
// underscore so the result is usable as an Ansible group name.
func SafeGroupName(name string) string {
	return unsafeGroupChars.ReplaceAllString(name, "_")
}

// Document is the full inventory: group name to ordered address list, plus
// the per-host variable map emitted under "_meta".
type Document struct {
	Groups   map[string][]string
	Hostvars map[string]Hostvars
}

// MarshalJSON flattens the document into the dynamic inventory wire shape:
// each group as a top-level key, and hostvars nested under "_meta".
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Groups)+1)
	for name, addrs := range d.Groups {
		out[name] = addrs
	}
	out["_meta"] = map[string]any{"hostvars": d.Hostvars}
	return json.Marshal(out)
}

// push appends an address to the named group, creating the group on first
// use. Empty group names and empty addresses are no-ops.
func (d *Document) push(group, address string) {
	if group == "" || address == "" {
		return
	}
	d.Groups[group] = append(d.Groups[group], address)
}

// Build shapes the server list into an inventory document. For each server,
// in adapter order, the access address is pushed into the server's name
// group, into one sanitized tag_<key>_<value> group per metadata pair, and
// into the metadata "group" group (DefaultGroup when absent). Servers with
// no usable address join no groups, but their hostvars are still recorded
// under the empty key, last write wins.
func Build(srvs []openstack.Server, preferPrivate bool) *Document {
	doc := &Document{
		Groups:   make(map[string][]string),
		Hostvars: make(map[string]Hostvars),
	}

	for i := range srvs {
		srv := &srvs[i]
		address := AccessAddress(srv, preferPrivate)

		doc.push(srv.Name, address)

		for key, val := range srv.Metadata {
			doc.push(SafeGroupName("tag_"+key+"_"+val), address)
		}

		group, ok := srv.Metadata["group"]
		if !ok {
			group = DefaultGroup
		}
		doc.push(group, address)

		doc.Hostvars[address] = Flatten(srv)
	}

	return doc
}
