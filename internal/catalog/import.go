package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/daylab/labmate/internal/chem"
)

const catalogSchemaURL = "schema://labmate-catalog.json"

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Warning flags a record that imported but looks suspicious.
type Warning struct {
	Index   int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("record %d: %s", w.Index+1, w.Message)
}

// ParseCatalog validates raw JSON against the catalog schema and decodes
// it into items. Schema violations fail the whole import; advisory issues
// (bad CAS pattern or check digit, no usable name) come back as warnings
// with the record still included.
func ParseCatalog(raw []byte) ([]Item, []Warning, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledCatalogSchema()
	if err != nil {
		return nil, nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, nil, fmt.Errorf("catalog does not match schema: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, fmt.Errorf("decode catalog: %w", err)
	}

	var warnings []Warning
	for i, item := range items {
		if item.DisplayName() == "" {
			warnings = append(warnings, Warning{i, "no name or formula recorded"})
		}
		if cas, ok := Str(item.CAS); ok {
			switch {
			case !chem.ValidCAS(cas):
				warnings = append(warnings, Warning{i, fmt.Sprintf("CAS %q does not match digits-digits-digit", cas)})
			case !chem.CASChecksumOK(cas):
				warnings = append(warnings, Warning{i, fmt.Sprintf("CAS %q fails its check digit", cas)})
			}
		}
	}

	return items, warnings, nil
}

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The compiler wants values as json.Unmarshal produces them, so
		// round-trip the Go literal through JSON first.
		raw, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(catalogSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add catalog schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(catalogSchemaURL)
	})
	return compiledSchema, compileErr
}
