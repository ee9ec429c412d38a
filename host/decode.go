package host

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/dnldd/candleplugin/shared"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

// configSchemaURL is the resource name the config schema is compiled under.
const configSchemaURL = "candleplugin-config.json"

// configSchema compiles the config payload schema derived from the editor panel.
var configSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return compileSchema(panelSchema(EditorPanel()))
})

// panelSchema returns the JSON schema of the config payload for the provided panel.
// Single column entries only accept a string, so multi column selections are rejected.
// Entries may be missing or null while the panel is being filled in.
func panelSchema(entries []PanelEntry) map[string]interface{} {
	properties := make(map[string]interface{}, len(entries))
	for _, entry := range entries {
		switch {
		case entry.Type == ColumnKind && entry.AllowMultiple:
			properties[entry.Name] = map[string]interface{}{
				"type":  []interface{}{"array", "null"},
				"items": map[string]interface{}{"type": "string"},
			}
		default:
			properties[entry.Name] = map[string]interface{}{
				"type": []interface{}{"string", "null"},
			}
		}
	}

	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
}

// compileSchema compiles the provided JSON schema document.
func compileSchema(data map[string]interface{}) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	err = compiler.AddResource(configSchemaURL, strings.NewReader(string(raw)))
	if err != nil {
		return nil, err
	}

	return compiler.Compile(configSchemaURL)
}

// parseObject parses the provided payload, asserting it is a JSON object.
func parseObject(payload []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(payload) {
		return gjson.Result{}, fmt.Errorf("%w: malformed json", shared.ErrInvalidPayload)
	}

	result := gjson.ParseBytes(payload)
	if !result.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: expected a json object, got %s",
			shared.ErrInvalidPayload, result.Type)
	}

	return result, nil
}

// DecodeConfig decodes a host config payload into a field configuration. Fields the
// payload does not bind are left unbound.
func DecodeConfig(payload []byte) (shared.FieldConfig, error) {
	result, err := parseObject(payload)
	if err != nil {
		return shared.FieldConfig{}, err
	}

	schema, err := configSchema()
	if err != nil {
		return shared.FieldConfig{}, fmt.Errorf("compiling config schema: %w", err)
	}

	err = schema.Validate(result.Value())
	if err != nil {
		return shared.FieldConfig{}, fmt.Errorf("%w: %v", shared.ErrInvalidPayload, err)
	}

	var cfg shared.FieldConfig
	result.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			return true
		}

		name := key.String()
		if name == sourceEntry {
			cfg.Source = value.String()
			return true
		}

		// Keys other than the panel entries are host settings the widget ignores.
		f, err := shared.ParseField(name)
		if err == nil {
			cfg.Bind(f, value.String())
		}

		return true
	})

	return cfg, nil
}

// DecodeElementData decodes a host element data payload, a JSON object mapping column
// identifiers to arrays of values, into a column store.
func DecodeElementData(payload []byte) (shared.Store, error) {
	result, err := parseObject(payload)
	if err != nil {
		return nil, err
	}

	store := make(shared.Store)
	result.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			err = fmt.Errorf("%w: column '%s' is not an array", shared.ErrInvalidPayload, key.String())
			return false
		}

		items := value.Array()
		col := make(shared.Column, len(items))
		for idx := range items {
			col[idx] = items[idx].Value()
		}
		store[key.String()] = col

		return true
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}
