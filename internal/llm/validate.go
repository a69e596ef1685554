package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	schemaMu     sync.Mutex
	schemaByName = map[string]*jsonschema.Schema{}
)

// validateResponse checks model output against the schema the request
// asked for. A nil schema accepts anything. Failures come back as
// *ErrInvalidResponse so the retry layer can grant one more call.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("output is not JSON: %w", err),
		}
	}

	compiled, err := schemaFor(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     err,
		}
	}

	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("output violates %s schema: %w", schema.Name, err),
		}
	}
	return nil
}

// schemaFor compiles a Schema once and reuses it on later calls, keyed
// by Schema.Name.
func schemaFor(schema *Schema) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if compiled, ok := schemaByName[schema.Name]; ok {
		return compiled, nil
	}

	// The compiler wants a decoded JSON document, so round-trip the
	// definition map through encoding/json.
	raw, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", schema.Name, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s schema: %w", schema.Name, err)
	}

	url := "schema://" + schema.Name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register %s schema: %w", schema.Name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", schema.Name, err)
	}

	schemaByName[schema.Name] = compiled
	return compiled, nil
}
