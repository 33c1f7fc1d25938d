package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/nova-inventory/internal/openstack"
)

func TestSafeGroupName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tag_env_prod", "tag_env_prod"},
		{"tag_role_web server", "tag_role_web_server"},
		{"tag_a.b:c/d", "tag_a_b_c_d"},
		{"keep-hyphens-123", "keep-hyphens-123"},
		{"", ""},
	}
	for _, tt := range tests {
		got := SafeGroupName(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, SafeGroupName(got), "sanitization must be idempotent")
	}
}

func TestBuildGrouping(t *testing.T) {
	srvs := []openstack.Server{
		{
			Name:       "api1",
			AccessIPv4: "10.0.0.1",
			Metadata:   map[string]string{"group": "web", "env": "prod"},
		},
	}

	doc := Build(srvs, false)

	assert.Equal(t, []string{"10.0.0.1"}, doc.Groups["api1"])
	assert.Equal(t, []string{"10.0.0.1"}, doc.Groups["tag_env_prod"])
	assert.Equal(t, []string{"10.0.0.1"}, doc.Groups["tag_group_web"])
	assert.Equal(t, []string{"10.0.0.1"}, doc.Groups["web"])
	assert.NotContains(t, doc.Groups, DefaultGroup)
}

func TestBuildDefaultGroup(t *testing.T) {
	srvs := []openstack.Server{
		{Name: "db1", AccessIPv4: "10.0.0.2", Metadata: map[string]string{}},
	}

	doc := Build(srvs, false)
	assert.Equal(t, []string{"10.0.0.2"}, doc.Groups[DefaultGroup])
}

func TestBuildAddresslessServer(t *testing.T) {
	srvs := []openstack.Server{
		{Name: "ghost", Metadata: map[string]string{"group": "web"}},
	}

	doc := Build(srvs, false)

	// No group memberships, but hostvars are still recorded under the
	// empty key.
	assert.Empty(t, doc.Groups)
	require.Contains(t, doc.Hostvars, "")
	assert.Equal(t, "ghost", doc.Hostvars[""]["os_name"])
}

func TestBuildAddresslessCollision(t *testing.T) {
	srvs := []openstack.Server{
		{Name: "ghost1"},
		{Name: "ghost2"},
	}

	doc := Build(srvs, false)
	require.Len(t, doc.Hostvars, 1)
	assert.Equal(t, "ghost2", doc.Hostvars[""]["os_name"], "last write wins")
}

func TestBuildDuplicatesPreserved(t *testing.T) {
	srvs := []openstack.Server{
		{Name: "web", AccessIPv4: "10.0.0.3", Metadata: map[string]string{"group": "web"}},
	}

	doc := Build(srvs, false)
	// Name group and metadata group share the name "web": two pushes.
	assert.Equal(t, []string{"10.0.0.3", "10.0.0.3"}, doc.Groups["web"])
}

func TestBuildEmptyMetadataGroupValue(t *testing.T) {
	srvs := []openstack.Server{
		{Name: "api2", AccessIPv4: "10.0.0.4", Metadata: map[string]string{"group": ""}},
	}

	doc := Build(srvs, false)
	// A present-but-empty group key pushes nothing and does not fall back.
	assert.NotContains(t, doc.Groups, DefaultGroup)
	assert.NotContains(t, doc.Groups, "")
}

func TestDocumentMarshalShape(t *testing.T) {
	srvs := []openstack.Server{
		{
			Name:       "api1",
			AccessIPv4: "10.0.0.1",
			Metadata:   map[string]string{"group": "web"},
		},
		{
			Name: "db1",
			Addresses: map[string][]openstack.Address{
				"net": {{Addr: "10.0.0.2", Type: openstack.AddressTypeFixed}},
			},
			Metadata: map[string]string{},
		},
	}

	raw, err := json.Marshal(Build(srvs, false))
	require.NoError(t, err)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &out))

	groups := map[string][]string{}
	for _, name := range []string{"api1", "web", "db1", "undefined"} {
		require.Contains(t, out, name)
		var addrs []string
		require.NoError(t, json.Unmarshal(out[name], &addrs))
		groups[name] = addrs
	}
	assert.Equal(t, []string{"10.0.0.1"}, groups["api1"])
	assert.Equal(t, []string{"10.0.0.1"}, groups["web"])
	assert.Equal(t, []string{"10.0.0.2"}, groups["db1"])
	assert.Equal(t, []string{"10.0.0.2"}, groups["undefined"])

	var meta struct {
		Hostvars map[string]map[string]any `json:"hostvars"`
	}
	require.Contains(t, out, "_meta")
	require.NoError(t, json.Unmarshal(out["_meta"], &meta))
	assert.Contains(t, meta.Hostvars, "10.0.0.1")
	assert.Contains(t, meta.Hostvars, "10.0.0.2")
	assert.Equal(t, "db1", meta.Hostvars["10.0.0.2"]["os_name"])
}
