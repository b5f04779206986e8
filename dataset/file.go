// Package dataset: filesystem entry points, format picked by extension.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lrioseco/pmap/core"
)

// Load reads a curriculum file and builds a store. The codec is chosen by
// extension: .json, .yaml or .yml (case-insensitive); anything else fails
// with ErrUnknownFormat.
func Load(path string) (*core.Store, error) {
	decode, err := codecFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return decode(data)
}

// Save writes the store to path, creating parent directories as needed.
// The codec is chosen by extension, same rules as Load.
func Save(s *core.Store, path string) error {
	if s == nil {
		return ErrNilStore
	}
	if _, err := codecFor(path); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = EncodeJSON(s)
	default: // .yaml / .yml, already vetted by codecFor
		data, err = EncodeYAML(s)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("dataset: mkdir %s: %w", dir, err)
		}
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return nil
}

// codecFor maps a file extension onto its decoder.
func codecFor(path string) (func([]byte) (*core.Store, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON, nil
	case ".yaml", ".yml":
		return DecodeYAML, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}
