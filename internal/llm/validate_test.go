package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// briefingSchema mirrors the shape the explain service asks models for.
func briefingSchema() *Schema {
	return &Schema{
		Name:        "safety-briefing",
		Description: "Reagent safety briefing for students",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"hazards": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"handling": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"first_aid": map[string]any{"type": "string"},
				"level": map[string]any{
					"type": "string",
					"enum": []any{"주의", "경고", "위험"},
				},
			},
			"required": []any{"summary", "hazards", "handling"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "complete briefing",
			raw: `{"summary":"황산은 강산이며 물과 격렬히 반응합니다.",
				"hazards":["부식성","발열 반응"],
				"handling":["항상 산을 물에 천천히 가한다"],
				"first_aid":"피부에 닿으면 다량의 물로 씻어낸다",
				"level":"위험"}`,
		},
		{
			name: "optional fields omitted",
			raw:  `{"summary":"증류수는 특별한 위험이 없습니다.","hazards":[],"handling":[]}`,
		},
		{
			name:    "missing required handling",
			raw:     `{"summary":"에탄올","hazards":["인화성"]}`,
			wantErr: true,
		},
		{
			name:    "hazards must be strings",
			raw:     `{"summary":"질산","hazards":[1,2],"handling":[]}`,
			wantErr: true,
		},
		{
			name:    "level outside the enum",
			raw:     `{"summary":"톨루엔","hazards":[],"handling":[],"level":"안전"}`,
			wantErr: true,
		},
		{
			name:    "not JSON at all",
			raw:     `수산화나트륨은 위험합니다`,
			wantErr: true,
		},
		{
			name:    "empty output",
			raw:     ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(briefingSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("validateResponse: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("want ErrInvalidResponse, got %T (%v)", err, err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema must accept any output, got %v", err)
	}
}

func TestValidateResponseNestedRecord(t *testing.T) {
	schema := &Schema{
		Name:        "reagent-record",
		Description: "Reagent with its storage slot",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reagent": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":    map[string]any{"type": "string"},
						"formula": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"shelf_lives_months": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"reagent", "shelf_lives_months"},
		},
	}

	valid := json.RawMessage(`{"reagent":{"name":"염화나트륨","formula":"NaCl"},"shelf_lives_months":[36,48]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}

	invalid := json.RawMessage(`{"reagent":{"formula":"NaCl"},"shelf_lives_months":[36]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("want an error when the nested name is missing")
	}
}

func TestSchemaForCaches(t *testing.T) {
	first, err := schemaFor(briefingSchema())
	if err != nil {
		t.Fatal(err)
	}
	second, err := schemaFor(briefingSchema())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("same schema name compiled twice")
	}
}
