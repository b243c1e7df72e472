package schema

import (
	"encoding/json"
	"io/fs"
	"strings"
	"testing"
)

// TestEmbeddedSchemasAreValidJSON verifies that all embedded schema files are valid JSON.
func TestEmbeddedSchemasAreValidJSON(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(FS, ".")
	if err != nil {
		t.Fatalf("failed to read embedded FS: %v", err)
	}

	schemaCount := 0
	for _, entry := range entries {
		entry := entry
		if !strings.HasSuffix(entry.Name(), ".schema.json") {
			continue
		}
		schemaCount++

		t.Run(entry.Name(), func(t *testing.T) {
			t.Parallel()

			data, err := FS.ReadFile(entry.Name())
			if err != nil {
				t.Fatalf("failed to read %s: %v", entry.Name(), err)
			}

			var v map[string]interface{}
			if err := json.Unmarshal(data, &v); err != nil {
				t.Errorf("%s is not a JSON object: %v", entry.Name(), err)
			}
			if _, ok := v["$schema"]; !ok {
				t.Errorf("%s missing $schema field", entry.Name())
			}
			if _, ok := v["type"]; !ok {
				t.Errorf("%s missing type field", entry.Name())
			}
		})
	}

	if schemaCount == 0 {
		t.Error("no schema files found in embedded FS")
	}
}

func TestExpectedSchemasExist(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"result.schema.json", "config.schema.json"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := FS.ReadFile(name); err != nil {
				t.Errorf("expected schema %s not found: %v", name, err)
			}
		})
	}
}
