package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed taskfile.schema.yaml
var taskfileSchemaYAML []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compile parses the embedded YAML schema and compiles it once.
func compile() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var schemaObj interface{}
		if err := yaml.Unmarshal(taskfileSchemaYAML, &schemaObj); err != nil {
			compileErr = fmt.Errorf("failed to parse embedded schema: %w", err)
			return
		}

		// Convert to JSON for the schema compiler
		jsonData, err := json.Marshal(schemaObj)
		if err != nil {
			compileErr = fmt.Errorf("failed to marshal embedded schema: %w", err)
			return
		}

		compiled, compileErr = jsonschema.CompileString("taskfile.schema.json", string(jsonData))
	})
	return compiled, compileErr
}

// ValidateTaskfile validates a raw taskfile document against the
// embedded schema before it is decoded into the typed model.
func ValidateTaskfile(data []byte) error {
	s, err := compile()
	if err != nil {
		return err
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse taskfile YAML: %w", err)
	}

	// Roundtrip through JSON so the document uses the value shapes the
	// schema compiler expects.
	jsonDoc, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert taskfile to JSON: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(jsonDoc, &doc); err != nil {
		return fmt.Errorf("failed to decode taskfile JSON: %w", err)
	}

	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("taskfile failed schema validation: %w", err)
	}
	return nil
}
