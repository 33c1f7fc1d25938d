package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// envFallbacks maps nova.ini keys to the environment variables consulted
// when the key is absent from the file. The file value wins when present.
var envFallbacks = map[string]string{
	"username":   "OS_USERNAME",
	"api_key":    "OS_PASSWORD",
	"auth_url":   "OS_AUTH_URL",
	"project_id": "OS_TENANT_NAME",
}

// Load locates and parses the first existing nova.ini from the candidate
// paths. It returns an error wrapping ErrNotFound when no candidate exists.
func Load() (*Profile, error) {
	return loadFrom(candidatePaths())
}

// candidatePaths returns the ordered list of config file locations:
// the working directory, an ANSIBLE_CONFIG override (defaulting to the
// user's home directory), and the system-wide path.
func candidatePaths() []string {
	override := os.Getenv("ANSIBLE_CONFIG")
	if override == "" {
		override = "~/nova.ini"
	}
	return []string{
		filepath.Join(".", "nova.ini"),
		expandUser(override),
		"/etc/ansible/nova.ini",
	}
}

// expandUser replaces a leading "~" with the user's home directory.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

func loadFrom(paths []string) (*Profile, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}
	return nil, fmt.Errorf("%w in %s", ErrNotFound, strings.Join(paths, ", "))
}

// LoadFile parses the [openstack] section of the given file into a Profile,
// applying environment fallbacks and defaults.
func LoadFile(path string) (*Profile, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	sec := file.Section(Section)
	p := &Profile{
		Version:      value(sec, "version"),
		Username:     value(sec, "username"),
		APIKey:       value(sec, "api_key"),
		AuthURL:      value(sec, "auth_url"),
		AuthSystem:   value(sec, "auth_system"),
		RegionName:   value(sec, "region_name"),
		ProjectID:    value(sec, "project_id"),
		EndpointType: value(sec, "endpoint_type"),
		ServiceType:  value(sec, "service_type"),
		ServiceName:  value(sec, "service_name"),

		Insecure:      sec.Key("insecure").MustBool(false),
		PreferPrivate: sec.Key("prefer_private").MustBool(false),
	}

	applyDefaults(p)
	return p, nil
}

// value returns the file value for key, falling back to the mapped
// environment variable when the file value is empty.
func value(sec *ini.Section, key string) string {
	if v := sec.Key(key).String(); v != "" {
		return v
	}
	if env, ok := envFallbacks[key]; ok {
		return os.Getenv(env)
	}
	return ""
}
