package registry

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
)

//go:embed registry.yaml
var rawRegistry []byte

//go:embed schema/registry.schema.json
var schemaBytes []byte

var (
	loadOnce sync.Once
	loadErr  error
	data     catalog
)

type catalog struct {
	Examples   []Example  `yaml:"examples" json:"examples"`
	Categories []Category `yaml:"categories" json:"categories"`
}

// load parses and validates the embedded catalog once. The catalog ships
// inside the binary, so a violation here is a build defect rather than a
// runtime condition: load panics instead of returning an error, and the
// package tests keep the panic unreachable in a released binary.
func load() catalog {
	loadOnce.Do(func() {
		if loadErr = validateCatalog(rawRegistry); loadErr != nil {
			return
		}
		loadErr = yaml.Unmarshal(rawRegistry, &data)
	})
	if loadErr != nil {
		panic(fmt.Sprintf("embedded registry: %v", loadErr))
	}
	return data
}

// validateCatalog checks raw YAML against the embedded registry schema.
func validateCatalog(raw []byte) error {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return fmt.Errorf("unmarshaling schema JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("registry.schema.json", schemaDoc); err != nil {
		return fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile("registry.schema.json")
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing registry YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees json.Number values
	// instead of YAML's native ints.
	jsonData, err := json.Marshal(normalizeYAML(doc))
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing JSON for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible types.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, child := range val {
			m[k] = normalizeYAML(child)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, child := range val {
			a[i] = normalizeYAML(child)
		}
		return a
	default:
		return val
	}
}

// LookupExample returns the descriptor for an example key. The boolean
// reports whether the key exists in the catalog.
func LookupExample(key string) (Example, bool) {
	for _, ex := range load().Examples {
		if ex.Key == key {
			return ex, true
		}
	}
	return Example{}, false
}

// LookupCategory returns the descriptor for a category key. The boolean
// reports whether the key exists in the catalog.
func LookupCategory(key string) (Category, bool) {
	for _, cat := range load().Categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// Examples returns every example descriptor in catalog order.
func Examples() []Example {
	src := load().Examples
	out := make([]Example, len(src))
	copy(out, src)
	return out
}

// Categories returns every category descriptor in catalog order.
func Categories() []Category {
	src := load().Categories
	out := make([]Category, len(src))
	copy(out, src)
	return out
}

// ExampleKeys returns all example keys in catalog order.
func ExampleKeys() []string {
	examples := load().Examples
	keys := make([]string, len(examples))
	for i, ex := range examples {
		keys[i] = ex.Key
	}
	return keys
}

// CategoryKeys returns all category keys in catalog order.
func CategoryKeys() []string {
	categories := load().Categories
	keys := make([]string, len(categories))
	for i, cat := range categories {
		keys[i] = cat.Key
	}
	return keys
}
