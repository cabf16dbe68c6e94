package types

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a plugin. Plugins usually embed it as plugin.yaml.
type Manifest struct {
	// Name is the plugin's name as shown in host diagnostics.
	Name string `yaml:"name" json:"name"`
	// Version is the plugin's own version.
	Version string `yaml:"version" json:"version"`
	// Description is a short human readable summary.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Options holds default plugin options. Options sent by the host take
	// precedence over these.
	Options Options `yaml:"options,omitempty" json:"options,omitempty"`
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// LoadManifest reads and decodes a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return ParseManifest(data)
}

// Validate checks that the required manifest fields are set.
func (m *Manifest) Validate() error {
	var errs []error
	if m.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if m.Version == "" {
		errs = append(errs, errors.New("version is required"))
	}

	return errors.Join(errs...)
}

// Capabilities is what a plugin reports when run with the capabilities argument.
type Capabilities struct {
	Name        string `json:"name,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	// Hooks lists the hooks the plugin has handlers for, in pipeline order.
	Hooks []Hook `json:"hooks"`
}
