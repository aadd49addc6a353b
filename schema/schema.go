// Package schema reads and writes schema files: documents mapping column
// name to declared type string. Both JSON and YAML forms are supported and
// round-trip exactly, including column order.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/coltools/colerrors"
	"github.com/erraggy/coltools/frame"
	"github.com/erraggy/coltools/series"
)

// Field is one column declaration.
type Field struct {
	Name string
	Type series.DType
}

// Schema is an ordered list of column declarations. Order matters: it is
// the positional order of the frame the schema describes, and it survives
// a write/read round trip.
type Schema []Field

// FromFrame captures the column names and dtypes of a frame in positional
// order.
func FromFrame(f *frame.Frame) Schema {
	s := make(Schema, 0, f.Width())
	for i := 0; i < f.Width(); i++ {
		col := f.ColumnAt(i)
		s = append(s, Field{Name: col.Name(), Type: col.DType()})
	}
	return s
}

// Names returns the column names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// validate rejects duplicate column names.
func (s Schema) validate() error {
	seen := make(map[string]bool, len(s))
	for _, f := range s {
		if seen[f.Name] {
			return &colerrors.SchemaError{Column: f.Name, Message: "duplicate column name"}
		}
		seen[f.Name] = true
	}
	return nil
}

// EncodeJSON writes the schema as a JSON object in column order.
func (s Schema) EncodeJSON(w io.Writer) error {
	if err := s.validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Type.String())
		if err != nil {
			return err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	_, err := w.Write(buf.Bytes())
	return err
}

// DecodeJSON reads a JSON schema object, preserving key order.
// Token-level decoding is used because encoding/json maps lose order.
func DecodeJSON(r io.Reader) (Schema, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, &colerrors.SchemaError{Message: "malformed schema document", Cause: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &colerrors.SchemaError{Message: fmt.Sprintf("want a JSON object, got %v", tok)}
	}

	var s Schema
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &colerrors.SchemaError{Message: "malformed schema document", Cause: err}
		}
		name := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, &colerrors.SchemaError{Column: name, Message: "malformed schema document", Cause: err}
		}
		typeName, ok := valTok.(string)
		if !ok {
			return nil, &colerrors.SchemaError{Column: name, Message: fmt.Sprintf("type must be a string, got %v", valTok)}
		}
		dtype, err := series.ParseDType(typeName)
		if err != nil {
			return nil, &colerrors.SchemaError{Column: name, TypeName: typeName, Message: "unsupported column type"}
		}
		s = append(s, Field{Name: name, Type: dtype})
	}
	if _, err := dec.Token(); err != nil {
		return nil, &colerrors.SchemaError{Message: "malformed schema document", Cause: err}
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeYAML writes the schema as a YAML mapping in column order.
func (s Schema) EncodeYAML(w io.Writer) error {
	if err := s.validate(); err != nil {
		return err
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range s {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Type.String()},
		)
	}
	data, err := yaml.Marshal(node)
	if err != nil {
		return &colerrors.SchemaError{Message: "failed to encode schema", Cause: err}
	}
	_, err = w.Write(data)
	return err
}

// DecodeYAML reads a YAML schema mapping, preserving key order.
// YAML mappings are decoded node-wise for the same reason JSON uses
// token-level decoding: Go maps lose key order.
func DecodeYAML(r io.Reader) (Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &colerrors.SchemaError{Message: "failed to read schema", Cause: err}
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &colerrors.SchemaError{Message: "malformed schema document", Cause: err}
	}
	if len(doc.Content) == 0 {
		return nil, &colerrors.SchemaError{Message: "empty schema document"}
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, &colerrors.SchemaError{Message: "want a YAML mapping"}
	}

	var s Schema
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		typeName := mapping.Content[i+1].Value
		dtype, err := series.ParseDType(typeName)
		if err != nil {
			return nil, &colerrors.SchemaError{Column: name, TypeName: typeName, Message: "unsupported column type"}
		}
		s = append(s, Field{Name: name, Type: dtype})
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteFile writes the schema to path, choosing the format by extension:
// .json writes JSON, .yaml/.yml writes YAML. Files are created with
// restrictive permissions.
func (s Schema) WriteFile(path string) error {
	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := s.EncodeJSON(&buf); err != nil {
			return err
		}
	case ".yaml", ".yml":
		if err := s.EncodeYAML(&buf); err != nil {
			return err
		}
	default:
		return &colerrors.ConfigError{
			Option:  "path",
			Value:   path,
			Message: "schema files must end in .json, .yaml, or .yml",
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}

// ReadFile reads a schema from path, choosing the format by extension.
func ReadFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return DecodeJSON(bytes.NewReader(data))
	case ".yaml", ".yml":
		return DecodeYAML(bytes.NewReader(data))
	default:
		return nil, &colerrors.ConfigError{
			Option:  "path",
			Value:   path,
			Message: "schema files must end in .json, .yaml, or .yml",
		}
	}
}
