package profiles

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/homepage/internal/common"
	"github.com/joseph-ayodele/homepage/internal/entity"
)

const seedSchemaURL = "profile.schema.json"

// seedSchema constrains profile seed files. Every key is optional; present keys
// must be non-empty so the merged profile stays fully populated.
const seedSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"name":     {"type": "string", "minLength": 1},
		"title":    {"type": "string", "minLength": 1},
		"about":    {"type": "string", "minLength": 1},
		"email":    {"type": "string", "minLength": 3},
		"linkedin": {"type": "string", "minLength": 1},
		"twitter":  {"type": "string", "minLength": 1},
		"github":   {"type": "string", "minLength": 1},
		"skills": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string", "minLength": 1}
		},
		"portfolio": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"additionalProperties": false,
				"required": ["title", "description"],
				"properties": {
					"title":       {"type": "string", "minLength": 1},
					"description": {"type": "string"}
				}
			}
		}
	}
}`

var compiledSeedSchema = jsonschema.MustCompileString(seedSchemaURL, seedSchema)

// LoadSeed reads a JSON profile from path, validates it and overlays it on base.
func LoadSeed(path string, base entity.Profile) (entity.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read profile seed: %w", err)
	}
	return ParseSeed(data, base)
}

// ParseSeed validates raw JSON against the seed schema and overlays it on base.
func ParseSeed(data []byte, base entity.Profile) (entity.Profile, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return base, common.NewAppError("PROFILE_SEED", "profile seed is not valid JSON", fmt.Errorf("%w: %w", common.ErrValidation, err))
	}
	if err := compiledSeedSchema.Validate(doc); err != nil {
		return base, common.NewAppError("PROFILE_SEED", "profile seed does not match schema", fmt.Errorf("%w: %w", common.ErrValidation, err))
	}

	out := base.Clone()
	// Unmarshal only overwrites keys present in the document.
	if err := json.Unmarshal(data, &out); err != nil {
		return base, common.WrapError(err, "decode profile seed")
	}
	return out, nil
}
