// Package dataset: JSON and YAML byte codecs over the Document shape.
package dataset

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lrioseco/pmap/core"
)

// EncodeJSON renders the store as indented JSON.
func EncodeJSON(s *core.Store) ([]byte, error) {
	doc, err := Encode(s)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("dataset: encode json: %w", err)
	}

	return append(data, '\n'), nil
}

// DecodeJSON parses a JSON document and builds a validated store.
func DecodeJSON(data []byte) (*core.Store, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dataset: decode json: %w", err)
	}

	return Build(doc)
}

// EncodeYAML renders the store as YAML.
func EncodeYAML(s *core.Store) ([]byte, error) {
	doc, err := Encode(s)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("dataset: encode yaml: %w", err)
	}

	return data, nil
}

// DecodeYAML parses a YAML document and builds a validated store.
func DecodeYAML(data []byte) (*core.Store, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dataset: decode yaml: %w", err)
	}

	return Build(doc)
}
