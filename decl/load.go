package decl

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a YAML definition and compiles it.
// Unknown keys are rejected.
func LoadYAML(data []byte, opts ...Options) (*Set, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	return Compile(doc, opts...)
}

// LoadJSON decodes a JSON definition and compiles it.
// Unknown keys are rejected.
func LoadJSON(data []byte, opts ...Options) (*Set, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	return Compile(doc, opts...)
}
