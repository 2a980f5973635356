package records

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads order rows from a YAML or JSON file holding a list of rows.
func Load(path string) ([]OrderRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads a YAML or JSON list of order rows. Empty input yields no rows.
func Decode(r io.Reader) ([]OrderRow, error) {
	var rows []OrderRow
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rows); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode order rows: %w", err)
	}
	return rows, nil
}
