package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/david/farm-grant-matcher/internal/models"
	"github.com/qri-io/jsonschema"
)

//go:embed grant_schema.json
var grantSchemaJSON []byte

var (
	grantSchemaOnce sync.Once
	grantSchema     *jsonschema.Schema
	grantSchemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	grantSchemaOnce.Do(func() {
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(grantSchemaJSON, rs); err != nil {
			grantSchemaErr = fmt.Errorf("compile grant schema: %w", err)
			return
		}
		grantSchema = rs
	})
	return grantSchema, grantSchemaErr
}

// ValidateGrants runs every record through the grant JSON Schema plus the
// cross-field checks the schema cannot express. Structural problems are a
// catalog-provider defect, so the first violation aborts the load.
func ValidateGrants(ctx context.Context, grants []models.Grant) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(grants))
	for _, g := range grants {
		data, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("encode record %q: %w", g.ID, err)
		}
		keyErrs, err := schema.ValidateBytes(ctx, data)
		if err != nil {
			return fmt.Errorf("validate record %q: %w", g.ID, err)
		}
		if len(keyErrs) > 0 {
			return fmt.Errorf("record %q: %s", g.ID, keyErrs[0].Error())
		}

		if seen[g.ID] {
			return fmt.Errorf("record %q: duplicate id", g.ID)
		}
		seen[g.ID] = true

		if err := checkCrossFields(g); err != nil {
			return fmt.Errorf("record %q: %w", g.ID, err)
		}
	}
	return nil
}

func checkCrossFields(g models.Grant) error {
	if g.InstitutionOnly && g.SmallFarmFriendly {
		return fmt.Errorf("institution_only conflicts with small_farm_friendly")
	}
	switch g.DeadlineType {
	case models.DeadlineRolling:
		if g.Deadline != nil {
			return fmt.Errorf("rolling deadline must not carry a date")
		}
	case models.DeadlineFixed:
		if g.Deadline == nil {
			return fmt.Errorf("fixed deadline requires a date")
		}
	}
	if g.AmountMin != nil && g.AmountMax != nil && *g.AmountMin > *g.AmountMax {
		return fmt.Errorf("amount_min %v exceeds amount_max %v", *g.AmountMin, *g.AmountMax)
	}
	for _, s := range g.States {
		if !models.IsUSStateCode(s) {
			return fmt.Errorf("unknown state code %q", s)
		}
	}
	return nil
}
