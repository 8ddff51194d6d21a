package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog_v1.yaml
var defaultCatalogYAML []byte

// LoadDefault parses and validates the embedded catalog artifact.
func LoadDefault() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// LoadFile parses and validates a catalog artifact from disk. Used when
// CATALOG_PATH points at a newer catalog version than the embedded one.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a catalog artifact with strict field checking and runs the
// full load-time validation. A catalog that parses but violates any
// consistency rule is rejected with a ConfigurationError.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
