// Package profile loads named deployment config profiles.
//
// A profile is a YAML document at deployment/config/<name>.yml selecting
// environment-specific parameters for the generated Cloud Run manifest.
// Only the cloud_run section is consumed; every field is optional and
// falls back to a built-in default at injection time.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dir is the conventional location of profile files, relative to the
// working directory of the deploy pipeline.
const Dir = "deployment/config"

// CanonicalProfiles are the profiles every VCE checkout is expected to
// carry. Used as a hint when a requested profile does not exist.
var CanonicalProfiles = []string{"staging", "production"}

// Profile is a loaded config profile document.
type Profile struct {
	// CloudRun holds the Cloud Run service parameters.
	CloudRun CloudRun `yaml:"cloud_run"`
}

// CloudRun configures the rendered Cloud Run service.
type CloudRun struct {
	// ServiceName overrides the default service name.
	ServiceName string `yaml:"service_name"`

	// ServiceAccount overrides the synthesized sa-vce service account.
	ServiceAccount string `yaml:"service_account"`

	// Resources sets container resource limits and requests.
	Resources Resources `yaml:"resources"`

	// Scaling sets autoscaling bounds and request concurrency.
	Scaling Scaling `yaml:"scaling"`
}

// Resources holds container resource settings as raw Cloud Run strings.
type Resources struct {
	CPU           string `yaml:"cpu"`
	Memory        string `yaml:"memory"`
	CPURequest    string `yaml:"cpu_request"`
	MemoryRequest string `yaml:"memory_request"`
}

// Scaling holds autoscaling settings. Pointer fields distinguish an
// explicit 0 from an absent field, which gets the default.
type Scaling struct {
	MinInstances *int `yaml:"min_instances"`
	MaxInstances *int `yaml:"max_instances"`
	Concurrency  *int `yaml:"concurrency"`
}

// Path returns the conventional file path for a profile name.
func Path(name string) string {
	return filepath.Join(Dir, name+".yml")
}

// Load reads and parses the profile with the given name.
// A missing file is reported with the canonical profiles as a hint.
func Load(name string) (*Profile, error) {
	path := Path(name)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config profile %q not found at %s (available profiles: %s)",
				name, path, strings.Join(CanonicalProfiles, ", "))
		}
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	return &p, nil
}

// Environment classifies a profile name by prefix. Names starting with
// "staging" or "production" map to those environments; everything else
// is development. This is deliberately a prefix check, not an exact
// match, so "staging-v2" deploys as staging.
func Environment(name string) string {
	switch {
	case strings.HasPrefix(name, "staging"):
		return "staging"
	case strings.HasPrefix(name, "production"):
		return "production"
	default:
		return "development"
	}
}

// List returns the profile names found under Dir, sorted.
func List() ([]string, error) {
	entries, err := os.ReadDir(Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read profile directory %s: %w", Dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yml"))
	}

	sort.Strings(names)
	return names, nil
}
