package explain

import "github.com/daylab/labmate/internal/llm"

// ExplanationSchema defines the JSON schema for safety explanation generation.
var ExplanationSchema = &llm.Schema{
	Name:        "safety-explanation",
	Description: "A safety briefing for a laboratory reagent, written in Korean",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence overview of the substance and its main risks, in Korean",
			},
			"hazards": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 specific hazards, one short Korean sentence each",
			},
			"handling": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 handling and storage rules, one short Korean sentence each",
			},
			"first_aid": map[string]any{
				"type":        "string",
				"description": "First-aid step for the most likely exposure, 1-2 Korean sentences",
			},
		},
		"required":             []any{"summary", "hazards", "handling", "first_aid"},
		"additionalProperties": false,
	},
}
