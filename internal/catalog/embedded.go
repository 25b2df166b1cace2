package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/david/farm-grant-matcher/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Grants []models.Grant `yaml:"grants"`
}

// LoadEmbedded parses and validates the catalog compiled into the binary.
// This is the default production catalog and the only one the self-test
// harness needs, so the harness runs without network or database access.
func LoadEmbedded(ctx context.Context) (*Snapshot, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	if len(file.Grants) == 0 {
		return nil, fmt.Errorf("embedded catalog is empty")
	}
	if err := ValidateGrants(ctx, file.Grants); err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return NewSnapshot(file.Grants), nil
}
