package catalog

// catalogSchema is the JSON Schema a catalog import file must satisfy:
// a top-level array of reagent records with optional fields. Validation
// runs before unmarshaling so a malformed file is rejected with a precise
// error instead of silently producing half-empty items.
var catalogSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name_ko":          map[string]any{"type": "string"},
			"name_en":          map[string]any{"type": "string"},
			"formula":          map[string]any{"type": "string"},
			"cas":              map[string]any{"type": "string"},
			"molar_mass":       map[string]any{"type": "number", "exclusiveMinimum": 0},
			"density":          map[string]any{"type": "number", "exclusiveMinimum": 0},
			"location_area":    map[string]any{"type": "string"},
			"location_cabinet": map[string]any{"type": "string"},
			"hazard": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"toxic":             map[string]any{"type": "boolean"},
					"restricted":        map[string]any{"type": "boolean"},
					"prohibited":        map[string]any{"type": "boolean"},
					"school_designated": map[string]any{"type": "boolean"},
				},
				"additionalProperties": false,
			},
		},
		"additionalProperties": false,
	},
}
