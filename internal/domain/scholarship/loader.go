package scholarship

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a record file. JSON files decode as well,
// since YAML is a superset.
type File struct {
	Scholarships []RawRecord `yaml:"scholarships" json:"scholarships"`
}

// Load validates raws and converts them to records, preserving order. The
// first malformed record aborts the load.
func Load(raws []RawRecord) ([]Record, error) {
	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := ValidateRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, raw.Name, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ValidateRecord checks a single raw record.
func ValidateRecord(raw RawRecord) (Record, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return Record{}, ErrInvalidRecord
	}
	due, err := ParseDate(raw.DueDate)
	if err != nil {
		return Record{}, err
	}
	return Record{Name: raw.Name, DueDate: due, Summary: raw.Summary}, nil
}

// Decode reads a record file from r and validates it.
func Decode(r io.Reader) ([]Record, error) {
	var f File
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("parse record file: %w", err)
	}
	return Load(f.Scholarships)
}

// LoadFile reads and validates the record file at path.
func LoadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	defer file.Close()

	records, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// LoadCatalog validates a compiled-in catalog by name.
func LoadCatalog(name string) ([]Record, error) {
	raws, err := Catalog(name)
	if err != nil {
		return nil, err
	}
	return Load(raws)
}
