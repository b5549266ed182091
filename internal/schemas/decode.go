package schemas

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// DecodeFile reads a YAML or JSON document from fsys, checks it against the
// named schema and decodes it into out. JSON is read with the YAML decoder,
// so struct fields need yaml tags.
func DecodeFile(fsys fs.FS, path, schema string, out any) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(data, schema, out)
}

// Decode checks raw YAML/JSON content against the named schema and decodes it into out.
func Decode(data []byte, schema string, out any) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := ValidateDocument(schema, doc); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
